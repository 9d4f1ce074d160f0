package identity

import (
	"context"

	"techtrove/internal/domain"
)

// Repository looks identities up in the static credential list. The session
// store owns the secret comparison; lookup is by email only.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	List(ctx context.Context) ([]domain.Identity, error)
}
