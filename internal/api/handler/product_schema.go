package handler

import (
	"time"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// timeFormat is the wire format for all timestamps.
const timeFormat = time.RFC3339

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,max=512"`
}

// updateProductRequest is a partial patch: absent fields leave the stored
// value untouched.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"   validate:"omitempty,max=512"`
}

// Response-only type owned by the transport layer, intentionally separate
// from the domain type so the JSON contract is not coupled to internal
// service changes.
type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    *string `json:"image_url"`
	UpdatedAt   string  `json:"updated_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		ImageURL:    p.ImageURL,
		UpdatedAt:   p.UpdatedAt.UTC().Format(timeFormat),
	}
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
