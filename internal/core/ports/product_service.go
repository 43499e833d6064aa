package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// ListProductsInput carries the raw, unvalidated listing parameters as they
// arrive from the boundary. SortBy/SortDir are validated by the service
// against closed allow-lists; empty values fall back to name/asc.
type ListProductsInput struct {
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	MinQuantity *int
	HasImage    *bool
	SortBy      string
	SortDir     string
}

// CreateProductInput carries all data needed to create a product.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       float64
	Quantity    int
	ImageURL    *string
}

// UpdateProductInput is a partial patch: nil fields are absent and leave the
// stored value untouched; non-nil fields replace it.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	ImageURL    *string
}

// Empty reports whether the patch carries no fields at all.
func (in UpdateProductInput) Empty() bool {
	return in.Name == nil && in.Description == nil && in.Price == nil &&
		in.Quantity == nil && in.ImageURL == nil
}

// ProductService defines the product catalog operations.
type ProductService interface {
	List(ctx context.Context, input ListProductsInput) ([]*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
