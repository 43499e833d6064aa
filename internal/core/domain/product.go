package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is the inventory aggregate root.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	ImageURL    *string   `json:"image_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasImage reports whether the product carries a usable image reference.
// A NULL and an empty-string image_url are equivalent "no image" states.
func (p Product) HasImage() bool {
	return p.ImageURL != nil && *p.ImageURL != ""
}

// Sort fields accepted by product listing. The set is closed: anything else
// fails validation rather than falling back to the default.
const (
	SortByName      = "name"
	SortByPrice     = "price"
	SortByQuantity  = "quantity"
	SortByUpdatedAt = "updated_at"

	SortAsc  = "asc"
	SortDesc = "desc"
)

var allowedSortFields = map[string]struct{}{
	SortByName:      {},
	SortByPrice:     {},
	SortByQuantity:  {},
	SortByUpdatedAt: {},
}

// NormalizeSort lowercases and validates a sort_by/sort_dir pair, applying
// defaults for empty values. An unrecognized value yields ErrInvalidSort
// wrapped with the offending field, value, and the allowed set.
func NormalizeSort(sortBy, sortDir string) (string, string, error) {
	sortBy = strings.ToLower(sortBy)
	if sortBy == "" {
		sortBy = SortByName
	}
	sortDir = strings.ToLower(sortDir)
	if sortDir == "" {
		sortDir = SortAsc
	}

	if _, ok := allowedSortFields[sortBy]; !ok {
		return "", "", fmt.Errorf("%w: sort_by %q not allowed, allowed: name, price, quantity, updated_at", ErrInvalidSort, sortBy)
	}
	if sortDir != SortAsc && sortDir != SortDesc {
		return "", "", fmt.Errorf("%w: sort_dir %q not allowed, allowed: asc, desc", ErrInvalidSort, sortDir)
	}
	return sortBy, sortDir, nil
}
