package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// Column list for the order header is enumerated explicitly; adding a field to
// domain.Order does not silently change what gets persisted.
const insertOrderSQL = `
INSERT INTO taco_order (
    delivery_name, delivery_address, delivery_city, delivery_state, delivery_zip,
    cc_number, cc_expiration, cc_cvv, placed_at, user_id
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertOrderTacoSQL = `INSERT INTO taco_order_tacos (taco_order, taco) VALUES (?, ?)`

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save persists the order header and one association row per taco inside a
// single transaction. On any failure nothing survives, neither the header nor
// earlier association rows.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	for _, taco := range order.Tacos {
		if !taco.Persisted() {
			return nil, domain.ErrInvalidOrderState
		}
	}

	order.PlacedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, insertOrderSQL,
		order.DeliveryName, order.DeliveryAddress, order.DeliveryCity,
		order.DeliveryState, order.DeliveryZip,
		order.CCNumber, order.CCExpiration, order.CCCVV,
		order.PlacedAt, nullableID(order.UserID),
	)
	if err != nil {
		return nil, storeErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr(err)
	}
	order.ID = id

	for _, taco := range order.Tacos {
		if _, err := tx.ExecContext(ctx, insertOrderTacoSQL, id, taco.ID); err != nil {
			return nil, storeErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr(err)
	}
	return order, nil
}

type orderRow struct {
	ID              int64         `db:"id"`
	DeliveryName    string        `db:"delivery_name"`
	DeliveryAddress string        `db:"delivery_address"`
	DeliveryCity    string        `db:"delivery_city"`
	DeliveryState   string        `db:"delivery_state"`
	DeliveryZip     string        `db:"delivery_zip"`
	CCNumber        string        `db:"cc_number"`
	CCExpiration    string        `db:"cc_expiration"`
	CCCVV           string        `db:"cc_cvv"`
	PlacedAt        time.Time     `db:"placed_at"`
	UserID          sql.NullInt64 `db:"user_id"`
}

// ListByUser returns the user's placed orders, newest first, with their tacos
// loaded in line-item order.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	var rows []orderRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, delivery_name, delivery_address, delivery_city, delivery_state, delivery_zip,
		        cc_number, cc_expiration, cc_cvv, placed_at, user_id
		   FROM taco_order WHERE user_id = ? ORDER BY placed_at DESC, id DESC`, userID)
	if err != nil {
		return nil, storeErr(err)
	}

	orders := make([]*domain.Order, 0, len(rows))
	for _, row := range rows {
		order := &domain.Order{
			ID:              row.ID,
			DeliveryName:    row.DeliveryName,
			DeliveryAddress: row.DeliveryAddress,
			DeliveryCity:    row.DeliveryCity,
			DeliveryState:   row.DeliveryState,
			DeliveryZip:     row.DeliveryZip,
			CCNumber:        row.CCNumber,
			CCExpiration:    row.CCExpiration,
			CCCVV:           row.CCCVV,
			PlacedAt:        row.PlacedAt,
			UserID:          row.UserID.Int64,
		}
		if err := r.loadTacos(ctx, order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepository) loadTacos(ctx context.Context, order *domain.Order) error {
	type tacoRow struct {
		ID        int64     `db:"id"`
		Name      string    `db:"name"`
		CreatedAt time.Time `db:"created_at"`
	}
	var rows []tacoRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT t.id, t.name, t.created_at
		   FROM taco_order_tacos ot JOIN taco t ON t.id = ot.taco
		  WHERE ot.taco_order = ? ORDER BY ot.rowid`, order.ID)
	if err != nil {
		return storeErr(err)
	}
	for _, row := range rows {
		order.Tacos = append(order.Tacos, domain.Taco{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt})
	}
	return nil
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
