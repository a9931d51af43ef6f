package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tacocloud/tacocloud/internal/core/domain"
	"github.com/tacocloud/tacocloud/internal/core/ports"
)

type OrderService struct {
	orders ports.OrderRepository
	carts  ports.CartStore
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, carts ports.CartStore, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, logger: logger}
}

// Checkout merges the submitted delivery and payment fields into the session
// draft, persists the order, and clears the draft. A session without a draft
// checks out as an empty order.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, userID int64, input ports.CheckoutInput) (*domain.Order, error) {
	draft, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			return nil, err
		}
		draft = &domain.Order{}
	}

	draft.DeliveryName = input.DeliveryName
	draft.DeliveryAddress = input.DeliveryAddress
	draft.DeliveryCity = input.DeliveryCity
	draft.DeliveryState = input.DeliveryState
	draft.DeliveryZip = input.DeliveryZip
	draft.CCNumber = input.CCNumber
	draft.CCExpiration = input.CCExpiration
	draft.CCCVV = input.CCCVV
	draft.UserID = userID

	placed, err := s.orders.Save(ctx, draft)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to place order")
		return nil, err
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		// The order is already durable; a stale draft only lingers until its
		// TTL expires.
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear draft order")
	}

	s.logger.Info().Int64("order_id", placed.ID).Int("tacos", len(placed.Tacos)).Msg("order placed")
	return placed, nil
}

// History returns the user's placed orders, newest first.
func (s *OrderService) History(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
