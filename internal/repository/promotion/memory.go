package promotion

import (
	"context"
	"fmt"
	"sync"

	"techtrove/internal/domain"
)

type memoryRepo struct {
	mu         sync.RWMutex
	promotions []domain.Promotion
	nextID     int
}

func NewMemory(promotions []domain.Promotion) Repository {
	out := make([]domain.Promotion, len(promotions))
	copy(out, promotions)
	return &memoryRepo{promotions: out, nextID: len(out) + 1}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Promotion, len(r.promotions))
	copy(out, r.promotions)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.promotions {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, p domain.Promotion) (*domain.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = fmt.Sprintf("PROMO-%d", r.nextID)
		r.nextID++
	}
	for _, existing := range r.promotions {
		if existing.ID == p.ID {
			return nil, domain.ErrAlreadyExists
		}
	}
	r.promotions = append(r.promotions, p)
	created := p
	return &created, nil
}

func (r *memoryRepo) Update(_ context.Context, p domain.Promotion) (*domain.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.promotions {
		if r.promotions[i].ID == p.ID {
			r.promotions[i] = p
			updated := p
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.promotions {
		if r.promotions[i].ID == id {
			r.promotions = append(r.promotions[:i], r.promotions[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
