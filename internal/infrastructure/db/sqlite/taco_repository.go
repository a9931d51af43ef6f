package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

type TacoRepository struct {
	db *sqlx.DB
}

func NewTacoRepository(db *sqlx.DB) *TacoRepository {
	return &TacoRepository{db: db}
}

// Save persists the taco and its ordered ingredient rows in one transaction,
// returning the taco with its generated id.
func (r *TacoRepository) Save(ctx context.Context, taco *domain.Taco) (*domain.Taco, error) {
	if taco.CreatedAt.IsZero() {
		taco.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO taco (name, created_at) VALUES (?, ?)`, taco.Name, taco.CreatedAt)
	if err != nil {
		return nil, storeErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr(err)
	}
	taco.ID = id

	for seq, ingredient := range taco.Ingredients {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO taco_ingredients (taco, ingredient, seq) VALUES (?, ?, ?)`,
			id, ingredient, seq)
		if err != nil {
			return nil, storeErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr(err)
	}
	return taco, nil
}
