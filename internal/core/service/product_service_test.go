package service

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

// memProductRepo is an in-memory ProductRepository that mirrors the store's
// predicate and ordering semantics.
type memProductRepo struct {
	products []*domain.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}

func (r *memProductRepo) matches(p *domain.Product, f ports.ListProductsFilter) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinQuantity != nil && p.Quantity < *f.MinQuantity {
		return false
	}
	if f.HasImage != nil && p.HasImage() != *f.HasImage {
		return false
	}
	return true
}

func (r *memProductRepo) List(_ context.Context, f ports.ListProductsFilter) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0)
	for _, p := range r.products {
		if r.matches(p, f) {
			out = append(out, cloneProduct(p))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch f.SortBy {
		case domain.SortByPrice:
			less = out[i].Price < out[j].Price
		case domain.SortByQuantity:
			less = out[i].Quantity < out[j].Quantity
		case domain.SortByUpdatedAt:
			less = out[i].UpdatedAt.Before(out[j].UpdatedAt)
		default:
			less = out[i].Name < out[j].Name
		}
		if f.SortDir == domain.SortDesc {
			return !less
		}
		return less
	})
	return out, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *memProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := cloneProduct(p)
	created.ID = r.nextID
	r.products = append(r.products, cloneProduct(created))
	return created, nil
}

func (r *memProductRepo) Update(_ context.Context, id int64, patch ports.UpdateProductInput) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID != id {
			continue
		}
		if patch.Empty() {
			return cloneProduct(p), nil
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Quantity != nil {
			p.Quantity = *patch.Quantity
		}
		if patch.ImageURL != nil {
			p.ImageURL = patch.ImageURL
		}
		p.UpdatedAt = time.Now().UTC()
		return cloneProduct(p), nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func strptr(s string) *string { return &s }

func floatptr(f float64) *float64 { return &f }

func intptr(i int) *int { return &i }

func boolptr(b bool) *bool { return &b }

func newTestProductService(t *testing.T) (*ProductService, *memProductRepo) {
	t.Helper()
	repo := newMemProductRepo()
	return NewProductService(repo, zerolog.Nop()), repo
}

// seedCatalog inserts the reference fixture: empty-string and nil image_url
// are both "no image".
func seedCatalog(t *testing.T, svc *ProductService) {
	t.Helper()
	fixtures := []ports.CreateProductInput{
		{Name: "Pen", Price: 1.5, Quantity: 100, ImageURL: strptr("")},
		{Name: "Notebook", Price: 3.2, Quantity: 20, ImageURL: nil},
		{Name: "Lamp", Price: 9.9, Quantity: 5, ImageURL: strptr("http://img/l.png")},
		{Name: "Pencil", Price: 0.8, Quantity: 200, ImageURL: strptr("")},
	}
	for _, f := range fixtures {
		if _, err := svc.Create(context.Background(), f); err != nil {
			t.Fatalf("seed %s: %v", f.Name, err)
		}
	}
}

func listNames(t *testing.T, svc *ProductService, input ports.ListProductsInput) []string {
	t.Helper()
	products, err := svc.List(context.Background(), input)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestProductService_List_NoPredicates(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	// Default sort is name ascending.
	got := listNames(t, svc, ports.ListProductsInput{})
	want := []string{"Lamp", "Notebook", "Pen", "Pencil"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductService_List_Search(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	got := listNames(t, svc, ports.ListProductsInput{Search: "Pen"})
	want := []string{"Pen", "Pencil"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Substring match is case-insensitive.
	got = listNames(t, svc, ports.ListProductsInput{Search: "pen"})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductService_List_PriceBounds(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	got := listNames(t, svc, ports.ListProductsInput{MinPrice: floatptr(3.0)})
	want := []string{"Lamp", "Notebook"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Bounds are inclusive.
	got = listNames(t, svc, ports.ListProductsInput{MinPrice: floatptr(3.2), MaxPrice: floatptr(3.2)})
	want = []string{"Notebook"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductService_List_MinQuantity(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	got := listNames(t, svc, ports.ListProductsInput{MinQuantity: intptr(100)})
	want := []string{"Pen", "Pencil"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductService_List_HasImage(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	// Only Lamp has a non-empty image_url.
	got := listNames(t, svc, ports.ListProductsInput{HasImage: boolptr(true)})
	want := []string{"Lamp"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// false matches both NULL and empty-string image URLs.
	got = listNames(t, svc, ports.ListProductsInput{HasImage: boolptr(false)})
	want = []string{"Notebook", "Pen", "Pencil"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductService_List_Conjunction(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	got := listNames(t, svc, ports.ListProductsInput{Search: "Pen", MinQuantity: intptr(150)})
	want := []string{"Pencil"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductService_List_SortDescending(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	got := listNames(t, svc, ports.ListProductsInput{SortBy: "price", SortDir: "desc"})
	if got[0] != "Lamp" {
		t.Fatalf("expected Lamp first, got %v", got)
	}
}

func TestProductService_List_SortCaseInsensitive(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	got := listNames(t, svc, ports.ListProductsInput{SortBy: "PRICE", SortDir: "DESC"})
	if got[0] != "Lamp" {
		t.Fatalf("expected Lamp first, got %v", got)
	}
}

func TestProductService_List_InvalidSort(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	// No silent fallback to the default sort.
	_, err := svc.List(context.Background(), ports.ListProductsInput{SortBy: "bogus"})
	if !errors.Is(err, domain.ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected error to name the offending value, got %q", err.Error())
	}

	_, err = svc.List(context.Background(), ports.ListProductsInput{SortDir: "sideways"})
	if !errors.Is(err, domain.ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
}

func TestProductService_List_Idempotent(t *testing.T) {
	svc, _ := newTestProductService(t)
	seedCatalog(t, svc)

	input := ports.ListProductsInput{MinPrice: floatptr(1.0), SortBy: "quantity", SortDir: "desc"}
	first := listNames(t, svc, input)
	second := listNames(t, svc, input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical queries diverged: %v vs %v", first, second)
	}
}

func TestProductService_CreateAndGet_RoundTrip(t *testing.T) {
	svc, _ := newTestProductService(t)

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "Desk",
		Description: strptr("oak, 120cm"),
		Price:       149.99,
		Quantity:    3,
		ImageURL:    strptr("http://img/desk.png"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Desk" || *got.Description != "oak, 120cm" || got.Price != 149.99 || got.Quantity != 3 || *got.ImageURL != "http://img/desk.png" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.UpdatedAt.Before(before.Truncate(time.Second)) {
		t.Fatalf("updated_at %v earlier than creation time %v", got.UpdatedAt, before)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc, _ := newTestProductService(t)

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_PartialMerge(t *testing.T) {
	svc, _ := newTestProductService(t)

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Chair", Price: 40, Quantity: 10,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{
		Price: floatptr(35.5),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 35.5 {
		t.Fatalf("expected price 35.5, got %v", updated.Price)
	}
	// Absent fields stay untouched.
	if updated.Name != "Chair" || updated.Quantity != 10 {
		t.Fatalf("unexpected side effects: %+v", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated_at did not advance")
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc, _ := newTestProductService(t)

	_, err := svc.Update(context.Background(), 404, ports.UpdateProductInput{Price: floatptr(1)})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	svc, _ := newTestProductService(t)

	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: 5, Quantity: 1})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on double delete, got %v", err)
	}
}
