package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

func TestTacoRepository_Save(t *testing.T) {
	repo := newTestDB(t)
	tacos := NewTacoRepository(repo.db)

	saved, err := tacos.Save(context.Background(), &domain.Taco{
		Name:        "Carnivore",
		Ingredients: []string{"FLTO", "GRBF", "CHED"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("expected generated id, got 0")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be stamped")
	}

	var got []string
	err = repo.db.Select(&got,
		`SELECT ingredient FROM taco_ingredients WHERE taco = ? ORDER BY seq`, saved.ID)
	if err != nil {
		t.Fatalf("select ingredients: %v", err)
	}
	want := []string{"FLTO", "GRBF", "CHED"}
	if len(got) != len(want) {
		t.Fatalf("expected %d ingredient rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ingredient %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTacoRepository_Save_UnknownIngredientRollsBack(t *testing.T) {
	repo := newTestDB(t)
	tacos := NewTacoRepository(repo.db)

	_, err := tacos.Save(context.Background(), &domain.Taco{
		Name:        "Mystery",
		Ingredients: []string{"FLTO", "NOPE"},
	})
	if !errors.Is(err, domain.ErrPersistenceRejected) {
		t.Fatalf("expected ErrPersistenceRejected, got %v", err)
	}
	if n := countRows(t, repo, `SELECT COUNT(*) FROM taco`); n != 0 {
		t.Fatalf("expected taco insert rolled back, got %d rows", n)
	}
	if n := countRows(t, repo, `SELECT COUNT(*) FROM taco_ingredients`); n != 0 {
		t.Fatalf("expected ingredient rows rolled back, got %d rows", n)
	}
}

func TestIngredientRepository(t *testing.T) {
	repo := newTestDB(t)
	ingredients := NewIngredientRepository(repo.db)

	all, err := ingredients.FindAll(context.Background())
	if err != nil {
		t.Fatalf("findAll: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("expected 10 seeded ingredients, got %d", len(all))
	}

	flto, err := ingredients.FindByID(context.Background(), "FLTO")
	if err != nil {
		t.Fatalf("findByID: %v", err)
	}
	if flto.Type != domain.TypeWrap {
		t.Fatalf("expected FLTO to be a WRAP, got %s", flto.Type)
	}

	if _, err := ingredients.FindByID(context.Background(), "NOPE"); !errors.Is(err, domain.ErrUnknownIngredient) {
		t.Fatalf("expected ErrUnknownIngredient, got %v", err)
	}
}
