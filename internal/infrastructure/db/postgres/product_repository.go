package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

const productColumns = "id, name, description, price, quantity, image_url, updated_at"

// sortColumns maps the validated logical sort fields to real columns. The
// map is the closed allow-list: nothing outside it ever reaches ORDER BY.
var sortColumns = map[string]string{
	domain.SortByName:      "name",
	domain.SortByPrice:     "price",
	domain.SortByQuantity:  "quantity",
	domain.SortByUpdatedAt: "updated_at",
}

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// buildListQuery translates a filter into a single SELECT with a conjunctive
// WHERE clause and one ORDER BY key. Pure function, no pool access.
func buildListQuery(filter ports.ListProductsFilter) (string, []any, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		conds = append(conds, "name ILIKE "+arg("%"+filter.Search+"%"))
	}
	if filter.MinPrice != nil {
		conds = append(conds, "price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "price <= "+arg(*filter.MaxPrice))
	}
	if filter.MinQuantity != nil {
		conds = append(conds, "quantity >= "+arg(*filter.MinQuantity))
	}
	if filter.HasImage != nil {
		// NULL and empty string are equivalent "no image" states.
		if *filter.HasImage {
			conds = append(conds, "(image_url IS NOT NULL AND image_url <> '')")
		} else {
			conds = append(conds, "(image_url IS NULL OR image_url = '')")
		}
	}

	col, ok := sortColumns[filter.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("%w: sort_by %q not allowed", domain.ErrInvalidSort, filter.SortBy)
	}
	dir := "ASC"
	if filter.SortDir == domain.SortDesc {
		dir = "DESC"
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + productColumns + " FROM products")
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY " + col + " " + dir)

	return sb.String(), args, nil
}

func (r *ProductRepository) List(ctx context.Context, filter ports.ListProductsFilter) ([]*domain.Product, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created := *p
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price, quantity, image_url, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, updated_at`,
		p.Name, p.Description, p.Price, p.Quantity, p.ImageURL, p.UpdatedAt).
		Scan(&created.ID, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &created, nil
}

// Update merges only the supplied patch fields onto the stored row and
// refreshes updated_at. An empty patch mutates nothing and returns the row
// as stored.
func (r *ProductRepository) Update(ctx context.Context, id int64, patch ports.UpdateProductInput) (*domain.Product, error) {
	if patch.Empty() {
		return r.FindByID(ctx, id)
	}

	var sets []string
	var args []any

	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.Quantity != nil {
		set("quantity", *patch.Quantity)
	}
	if patch.ImageURL != nil {
		set("image_url", *patch.ImageURL)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.ImageURL, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
