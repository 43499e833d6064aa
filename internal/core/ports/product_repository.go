package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// ListProductsFilter carries the normalized query parameters for listing
// products. All predicate fields are optional; nil means "not supplied".
// SortBy and SortDir are set by the service after allow-list validation.
type ListProductsFilter struct {
	Search      string   // case-insensitive substring match on name
	MinPrice    *float64 // inclusive lower bound on price
	MaxPrice    *float64 // inclusive upper bound on price
	MinQuantity *int     // inclusive lower bound on quantity
	HasImage    *bool    // true: image_url non-null and non-empty; false: null or empty
	SortBy      string
	SortDir     string
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// List returns all products matching the filter, ordered by the
	// resolved sort column. Ties share no guaranteed order.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, error)
	// FindByID returns domain.ErrProductNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Update applies the patch to an existing row and refreshes updated_at.
	// Returns domain.ErrProductNotFound when no row matches.
	Update(ctx context.Context, id int64, patch UpdateProductInput) (*domain.Product, error)
	// Delete returns domain.ErrProductNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}
