package catalog

import (
	"context"
	"errors"
	"testing"

	"techtrove/internal/domain"
	categoryrepo "techtrove/internal/repository/category"
	productrepo "techtrove/internal/repository/product"
	"techtrove/internal/seed"
)

func newService() *Service {
	return New(productrepo.NewMemory(seed.Products()), categoryrepo.NewMemory(seed.Categories()))
}

func TestListProductsUnfiltered(t *testing.T) {
	svc := newService()
	products, err := svc.ListProducts(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != len(seed.Products()) {
		t.Fatalf("expected full catalog, got %d products", len(products))
	}
}

func TestListProductsByCategory(t *testing.T) {
	svc := newService()
	products, err := svc.ListProducts(context.Background(), ListInput{Category: "Audio"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 audio products, got %d", len(products))
	}
	for _, p := range products {
		if p.Category != "audio" {
			t.Fatalf("unexpected product in category filter: %+v", p)
		}
	}
}

func TestListProductsSearchMatchesNameBrandDescription(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	byName, _ := svc.ListProducts(ctx, ListInput{Search: "nebula"})
	if len(byName) != 1 || byName[0].ID != 1 {
		t.Fatalf("expected name match, got %+v", byName)
	}

	byBrand, _ := svc.ListProducts(ctx, ListInput{Search: "AERO"})
	if len(byBrand) != 2 {
		t.Fatalf("expected two brand matches, got %d", len(byBrand))
	}

	byDescription, _ := svc.ListProducts(ctx, ListInput{Search: "stabilization"})
	if len(byDescription) != 1 || byDescription[0].ID != 5 {
		t.Fatalf("expected description match, got %+v", byDescription)
	}
}

func TestListProductsCombinedFilters(t *testing.T) {
	svc := newService()
	products, err := svc.ListProducts(context.Background(), ListInput{Category: "laptops", Search: "creator"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || products[0].ID != 10 {
		t.Fatalf("expected the creator laptop only, got %+v", products)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := newService()
	if _, err := svc.GetProduct(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListDealsOnlyDiscounted(t *testing.T) {
	svc := newService()
	deals, err := svc.ListDeals(context.Background())
	if err != nil {
		t.Fatalf("deals: %v", err)
	}
	if len(deals) == 0 {
		t.Fatalf("expected discounted products in the seed set")
	}
	for _, p := range deals {
		if !p.OnSale() {
			t.Fatalf("non-discounted product in deals: %+v", p)
		}
	}
}

func TestGetCategoryBySlug(t *testing.T) {
	svc := newService()
	c, err := svc.GetCategory(context.Background(), "smart-home")
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if c.Name != "Smart Home" {
		t.Fatalf("unexpected category: %+v", c)
	}

	if _, err := svc.GetCategory(context.Background(), "groceries"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
