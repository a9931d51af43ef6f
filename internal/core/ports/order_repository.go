package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// OrderRepository persists order headers and their line-item associations.
type OrderRepository interface {
	// Save stamps PlacedAt, writes the order header and one association row
	// per taco inside a single transaction, and returns the order enriched
	// with its generated id. Every taco must already carry a generated id;
	// otherwise Save fails with domain.ErrInvalidOrderState and writes
	// nothing.
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// ListByUser returns the user's placed orders, newest first, with their
	// tacos loaded.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
}
