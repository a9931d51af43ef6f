package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	repo := newTestDB(t)
	users := NewUserRepository(repo.db)

	created, err := users.Create(context.Background(), &domain.User{
		Username:     "ada",
		PasswordHash: "hash",
		Fullname:     "Ada Lovelace",
		Roles:        domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}

	found, err := users.FindByUsername(context.Background(), "ada")
	if err != nil {
		t.Fatalf("findByUsername: %v", err)
	}
	if found.Fullname != "Ada Lovelace" || !found.HasRole(domain.RoleUser) {
		t.Fatalf("unexpected user: %+v", found)
	}

	if _, err := users.Create(context.Background(), &domain.User{
		Username: "ada", PasswordHash: "other", Roles: domain.RoleUser,
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if _, err := users.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
