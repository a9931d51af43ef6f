package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// IngredientRepository reads the fixed ingredient catalog.
type IngredientRepository interface {
	FindAll(ctx context.Context) ([]domain.Ingredient, error)
	FindByID(ctx context.Context, id string) (*domain.Ingredient, error)
}
