package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// CheckoutInput carries the delivery and payment fields submitted on the
// order form. The line items come from the session draft, not the form.
type CheckoutInput struct {
	DeliveryName    string
	DeliveryAddress string
	DeliveryCity    string
	DeliveryState   string
	DeliveryZip     string
	CCNumber        string
	CCExpiration    string
	CCCVV           string
}

// OrderService defines use-case operations for placing and reviewing orders.
type OrderService interface {
	// Checkout merges the form fields into the session draft, persists it on
	// behalf of userID, and clears the draft. The returned order carries its
	// generated id and placement timestamp.
	Checkout(ctx context.Context, sessionID string, userID int64, input CheckoutInput) (*domain.Order, error)

	// History returns the user's placed orders, newest first.
	History(ctx context.Context, userID int64) ([]*domain.Order, error)
}
