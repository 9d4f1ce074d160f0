package product

import (
	"context"

	"techtrove/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	// UpdateInventory replaces the product's inventory counts and recomputes
	// the InStock flag from the available count.
	UpdateInventory(ctx context.Context, id int, inv domain.Inventory) (*domain.Product, error)
}
