package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// TacoRepository persists composed tacos and their ordered ingredient rows.
type TacoRepository interface {
	// Save stamps CreatedAt, writes the taco and its ingredient selections in
	// one transaction, and returns the taco with its generated id.
	Save(ctx context.Context, taco *domain.Taco) (*domain.Taco, error)
}
