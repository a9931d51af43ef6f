package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
