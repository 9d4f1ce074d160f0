package category

import (
	"context"
	"strings"

	"techtrove/internal/domain"
)

type memoryRepo struct {
	categories []domain.Category
}

func NewMemory(categories []domain.Category) Repository {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return &memoryRepo{categories: out}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Slug, slug) {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
