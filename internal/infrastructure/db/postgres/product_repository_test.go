package postgres

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

func floatptr(f float64) *float64 { return &f }

func intptr(i int) *int { return &i }

func boolptr(b bool) *bool { return &b }

func TestBuildListQuery_NoPredicates(t *testing.T) {
	query, args, err := buildListQuery(ports.ListProductsFilter{SortBy: "name", SortDir: "asc"})
	if err != nil {
		t.Fatalf("buildListQuery returned error: %v", err)
	}
	if strings.Contains(query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %q", query)
	}
	if !strings.HasSuffix(query, "ORDER BY name ASC") {
		t.Fatalf("unexpected ordering: %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildListQuery_AllPredicatesConjoined(t *testing.T) {
	query, args, err := buildListQuery(ports.ListProductsFilter{
		Search:      "pen",
		MinPrice:    floatptr(1),
		MaxPrice:    floatptr(10),
		MinQuantity: intptr(5),
		HasImage:    boolptr(true),
		SortBy:      "price",
		SortDir:     "desc",
	})
	if err != nil {
		t.Fatalf("buildListQuery returned error: %v", err)
	}

	for _, frag := range []string{
		"name ILIKE $1",
		"price >= $2",
		"price <= $3",
		"quantity >= $4",
		"(image_url IS NOT NULL AND image_url <> '')",
		"ORDER BY price DESC",
	} {
		if !strings.Contains(query, frag) {
			t.Fatalf("query missing %q: %q", frag, query)
		}
	}
	if !strings.Contains(query, "WHERE name ILIKE $1 AND price >= $2 AND price <= $3 AND quantity >= $4 AND (image_url") {
		t.Fatalf("predicates not conjoined in order: %q", query)
	}

	want := []any{"%pen%", 1.0, 10.0, 5}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected args %v, got %v", want, args)
	}
}

func TestBuildListQuery_NoImagePredicate(t *testing.T) {
	query, _, err := buildListQuery(ports.ListProductsFilter{
		HasImage: boolptr(false),
		SortBy:   "name",
		SortDir:  "asc",
	})
	if err != nil {
		t.Fatalf("buildListQuery returned error: %v", err)
	}
	// NULL and empty string are the same "no image" state.
	if !strings.Contains(query, "(image_url IS NULL OR image_url = '')") {
		t.Fatalf("missing no-image predicate: %q", query)
	}
}

func TestBuildListQuery_SortColumns(t *testing.T) {
	for field, column := range map[string]string{
		"name":       "name",
		"price":      "price",
		"quantity":   "quantity",
		"updated_at": "updated_at",
	} {
		query, _, err := buildListQuery(ports.ListProductsFilter{SortBy: field, SortDir: "asc"})
		if err != nil {
			t.Fatalf("sort_by %s: %v", field, err)
		}
		if !strings.HasSuffix(query, "ORDER BY "+column+" ASC") {
			t.Fatalf("sort_by %s: unexpected ordering %q", field, query)
		}
	}
}

func TestBuildListQuery_UnknownSortColumn(t *testing.T) {
	// The service validates first; the builder still refuses anything
	// outside the allow-list rather than interpolating it.
	_, _, err := buildListQuery(ports.ListProductsFilter{SortBy: "name; DROP TABLE products", SortDir: "asc"})
	if !errors.Is(err, domain.ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
}
