package order

import (
	"context"

	"techtrove/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Add(ctx context.Context, o domain.Order) error
	SetStatus(ctx context.Context, id, status string) (*domain.Order, error)
	SetTracking(ctx context.Context, id, trackingNumber string) (*domain.Order, error)
}
