package promotion

import (
	"context"

	"techtrove/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	GetByID(ctx context.Context, id string) (*domain.Promotion, error)
	Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}
