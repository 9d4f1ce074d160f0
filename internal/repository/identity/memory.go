package identity

import (
	"context"
	"strings"

	"techtrove/internal/domain"
)

type memoryRepo struct {
	identities []domain.Identity
}

// NewMemory builds a Repository over a fixed identity list.
func NewMemory(identities []domain.Identity) Repository {
	out := make([]domain.Identity, len(identities))
	copy(out, identities)
	return &memoryRepo{identities: out}
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.Identity, error) {
	for _, id := range r.identities {
		if strings.EqualFold(id.Email, email) {
			found := id
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Identity, error) {
	out := make([]domain.Identity, len(r.identities))
	copy(out, r.identities)
	return out, nil
}
