package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

func TestMemoryCartStore_RoundTrip(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	if _, err := store.Get(ctx, "sid"); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound for fresh session, got %v", err)
	}

	draft := &domain.Order{Tacos: []domain.Taco{{ID: 7, Name: "Carnivore"}}}
	if err := store.Put(ctx, "sid", draft); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "sid")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Tacos) != 1 || got.Tacos[0].ID != 7 {
		t.Fatalf("unexpected draft: %+v", got)
	}

	// The stored draft is a value, not shared state.
	got.Tacos = nil
	again, _ := store.Get(ctx, "sid")
	if len(again.Tacos) != 1 {
		t.Fatalf("draft mutated through a returned copy")
	}

	if err := store.Delete(ctx, "sid"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "sid"); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound after delete, got %v", err)
	}
}

func TestMemoryCartStore_Expiry(t *testing.T) {
	store := NewMemoryCartStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	if err := store.Put(context.Background(), "sid", &domain.Order{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(context.Background(), "sid"); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected expired cart to be gone, got %v", err)
	}
}
