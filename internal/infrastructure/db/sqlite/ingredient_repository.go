package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

type IngredientRepository struct {
	db *sqlx.DB
}

func NewIngredientRepository(db *sqlx.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) FindAll(ctx context.Context) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	err := r.db.SelectContext(ctx, &ingredients,
		`SELECT id, name, type FROM ingredient ORDER BY type, id`)
	if err != nil {
		return nil, storeErr(err)
	}
	return ingredients, nil
}

func (r *IngredientRepository) FindByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	err := r.db.GetContext(ctx, &ingredient,
		`SELECT id, name, type FROM ingredient WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownIngredient, id)
		}
		return nil, storeErr(err)
	}
	return &ingredient, nil
}
