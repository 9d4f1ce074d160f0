package catalog

import (
	"context"
	"strings"

	"techtrove/internal/domain"
)

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// Service serves the storefront's read-only catalog views.
type Service struct {
	products   productRepo
	categories categoryRepo
}

func New(products productRepo, categories categoryRepo) *Service {
	return &Service{products: products, categories: categories}
}

// ListInput filters the product list; zero values mean no filtering.
type ListInput struct {
	Category string
	Search   string
}

func (s *Service) ListProducts(ctx context.Context, in ListInput) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(in.Category)
	search := strings.ToLower(strings.TrimSpace(in.Search))
	if category == "" && search == "" {
		return products, nil
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func matchesSearch(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func (s *Service) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListDeals returns discounted products for the deals page.
func (s *Service) ListDeals(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.OnSale() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}
