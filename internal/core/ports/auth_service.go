package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username string
	Password string
	Fullname string
	Street   string
	City     string
	State    string
	Zip      string
	Phone    string
}

// AuthService authenticates users and issues session tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token plus
	// the resolved user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Profile resolves a username to its account record.
	Profile(ctx context.Context, username string) (*domain.User, error)
}
