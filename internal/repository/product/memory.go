package product

import (
	"context"
	"sync"

	"techtrove/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemory(products []domain.Product) Repository {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return &memoryRepo{products: out}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) UpdateInventory(_ context.Context, id int, inv domain.Inventory) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		r.products[i].Inventory = inv
		r.products[i].InStock = inv.Available > 0
		found := r.products[i]
		return &found, nil
	}
	return nil, domain.ErrNotFound
}
