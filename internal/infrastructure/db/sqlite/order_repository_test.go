package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

func newTestDB(t *testing.T) *OrderRepository {
	t.Helper()
	db, err := Connect(context.Background(), Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewOrderRepository(db)
}

func mustSaveTaco(t *testing.T, repo *OrderRepository, name string, ingredients ...string) domain.Taco {
	t.Helper()
	tacos := NewTacoRepository(repo.db)
	saved, err := tacos.Save(context.Background(), &domain.Taco{Name: name, Ingredients: ingredients})
	if err != nil {
		t.Fatalf("save taco %q: %v", name, err)
	}
	return *saved
}

func countRows(t *testing.T, repo *OrderRepository, query string, args ...any) int {
	t.Helper()
	var n int
	if err := repo.db.Get(&n, query, args...); err != nil {
		t.Fatalf("count query: %v", err)
	}
	return n
}

func TestOrderRepository_Save_EmptyOrder(t *testing.T) {
	repo := newTestDB(t)

	placed, err := repo.Save(context.Background(), &domain.Order{DeliveryName: "Ada"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if placed.ID == 0 {
		t.Fatalf("expected generated id, got 0")
	}
	if n := countRows(t, repo, `SELECT COUNT(*) FROM taco_order`); n != 1 {
		t.Fatalf("expected 1 header row, got %d", n)
	}
	if n := countRows(t, repo, `SELECT COUNT(*) FROM taco_order_tacos`); n != 0 {
		t.Fatalf("expected 0 association rows, got %d", n)
	}
}

func TestOrderRepository_Save_AssociationsCarryOrderID(t *testing.T) {
	repo := newTestDB(t)
	t1 := mustSaveTaco(t, repo, "Carnivore", "FLTO", "GRBF", "CHED")
	t2 := mustSaveTaco(t, repo, "Veg-Out", "COTO", "TMTO", "LETC")

	order := &domain.Order{DeliveryName: "Ada", Tacos: []domain.Taco{t1, t2}}
	placed, err := repo.Save(context.Background(), order)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	n := countRows(t, repo, `SELECT COUNT(*) FROM taco_order_tacos WHERE taco_order = ?`, placed.ID)
	if n != 2 {
		t.Fatalf("expected 2 association rows for order %d, got %d", placed.ID, n)
	}
	for _, taco := range []domain.Taco{t1, t2} {
		n := countRows(t, repo,
			`SELECT COUNT(*) FROM taco_order_tacos WHERE taco_order = ? AND taco = ?`,
			placed.ID, taco.ID)
		if n != 1 {
			t.Fatalf("expected association row (%d, %d), got %d", placed.ID, taco.ID, n)
		}
	}
}

func TestOrderRepository_Save_StampsPlacedAt(t *testing.T) {
	repo := newTestDB(t)
	before := time.Now().UTC()

	// A client-supplied timestamp must be overridden.
	stale := &domain.Order{DeliveryName: "Ada", PlacedAt: before.Add(-24 * time.Hour)}
	placed, err := repo.Save(context.Background(), stale)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if placed.PlacedAt.Before(before) {
		t.Fatalf("placedAt %v is before call time %v", placed.PlacedAt, before)
	}
}

func TestOrderRepository_Save_RejectsUnpersistedTaco(t *testing.T) {
	repo := newTestDB(t)
	saved := mustSaveTaco(t, repo, "Carnivore", "FLTO")

	order := &domain.Order{
		DeliveryName: "Ada",
		Tacos:        []domain.Taco{saved, {Name: "never saved"}},
	}
	_, err := repo.Save(context.Background(), order)
	if !errors.Is(err, domain.ErrInvalidOrderState) {
		t.Fatalf("expected ErrInvalidOrderState, got %v", err)
	}
	if n := countRows(t, repo, `SELECT COUNT(*) FROM taco_order`); n != 0 {
		t.Fatalf("expected no header rows after rejection, got %d", n)
	}
	if n := countRows(t, repo, `SELECT COUNT(*) FROM taco_order_tacos`); n != 0 {
		t.Fatalf("expected no association rows after rejection, got %d", n)
	}
}

func TestOrderRepository_Save_AllowsDuplicateTaco(t *testing.T) {
	repo := newTestDB(t)
	taco := mustSaveTaco(t, repo, "Carnivore", "FLTO")

	order := &domain.Order{DeliveryName: "Ada", Tacos: []domain.Taco{taco, taco}}
	placed, err := repo.Save(context.Background(), order)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	n := countRows(t, repo,
		`SELECT COUNT(*) FROM taco_order_tacos WHERE taco_order = ? AND taco = ?`,
		placed.ID, taco.ID)
	if n != 2 {
		t.Fatalf("expected 2 rows for duplicated taco, got %d", n)
	}
}

func TestOrderRepository_Save_NoUpsert(t *testing.T) {
	repo := newTestDB(t)
	taco := mustSaveTaco(t, repo, "Carnivore", "FLTO")

	order := &domain.Order{DeliveryName: "Ada", Tacos: []domain.Taco{taco}}
	first, err := repo.Save(context.Background(), order)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := repo.Save(context.Background(), order)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected two distinct header rows, both got id %d", first.ID)
	}
	if n := countRows(t, repo, `SELECT COUNT(*) FROM taco_order`); n != 2 {
		t.Fatalf("expected 2 header rows, got %d", n)
	}
}

func TestOrderRepository_ListByUser(t *testing.T) {
	repo := newTestDB(t)
	users := NewUserRepository(repo.db)
	user, err := users.Create(context.Background(), &domain.User{
		Username: "ada", PasswordHash: "x", Roles: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	taco := mustSaveTaco(t, repo, "Carnivore", "FLTO")
	for i := 0; i < 2; i++ {
		_, err := repo.Save(context.Background(), &domain.Order{
			DeliveryName: "Ada", UserID: user.ID, Tacos: []domain.Taco{taco},
		})
		if err != nil {
			t.Fatalf("save order %d: %v", i, err)
		}
	}
	// An order for somebody else must not show up.
	if _, err := repo.Save(context.Background(), &domain.Order{DeliveryName: "Eve"}); err != nil {
		t.Fatalf("save anonymous order: %v", err)
	}

	orders, err := repo.ListByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID < orders[1].ID {
		t.Fatalf("expected newest first, got ids %d, %d", orders[0].ID, orders[1].ID)
	}
	if len(orders[0].Tacos) != 1 || orders[0].Tacos[0].Name != "Carnivore" {
		t.Fatalf("expected taco loaded on order, got %+v", orders[0].Tacos)
	}
}
