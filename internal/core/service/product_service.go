package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/api/metrics"
	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

// ProductService implements catalog listing and CRUD on top of the
// product repository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List validates the sort specification against the closed allow-lists and
// delegates predicate composition to the repository. All supplied predicates
// combine conjunctively.
func (s *ProductService) List(ctx context.Context, input ports.ListProductsInput) ([]*domain.Product, error) {
	sortBy, sortDir, err := domain.NormalizeSort(input.SortBy, input.SortDir)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	products, err := s.repo.List(ctx, ports.ListProductsFilter{
		Search:      input.Search,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		MinQuantity: input.MinQuantity,
		HasImage:    input.HasImage,
		SortBy:      sortBy,
		SortDir:     sortDir,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	metrics.ProductListDuration.WithLabelValues(sortBy).Observe(time.Since(start).Seconds())
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		ImageURL:    input.ImageURL,
		UpdatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update merges only the fields present in the patch onto the stored row;
// updated_at advances to the time of mutation.
func (s *ProductService) Update(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}
