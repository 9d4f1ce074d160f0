package order

import (
	"context"
	"sync"

	"techtrove/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemory(orders []domain.Order) Repository {
	out := make([]domain.Order, len(orders))
	copy(out, orders)
	return &memoryRepo{orders: out}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Add(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.ID == o.ID {
			return domain.ErrAlreadyExists
		}
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *memoryRepo) SetStatus(_ context.Context, id, status string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			found := r.orders[i]
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) SetTracking(_ context.Context, id, trackingNumber string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].TrackingNumber = trackingNumber
			found := r.orders[i]
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
