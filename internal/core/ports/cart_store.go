package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// CartStore holds the draft order accumulated across a browsing session,
// keyed by session id. Entries expire; an expired or never-written key yields
// domain.ErrCartNotFound. Drafts are serializable values, never shared
// in-memory state between requests.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Order, error)
	Put(ctx context.Context, sessionID string, draft *domain.Order) error
	Delete(ctx context.Context, sessionID string) error
}
