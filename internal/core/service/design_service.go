package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tacocloud/tacocloud/internal/core/domain"
	"github.com/tacocloud/tacocloud/internal/core/ports"
)

type DesignService struct {
	ingredients ports.IngredientRepository
	tacos       ports.TacoRepository
	carts       ports.CartStore
	logger      zerolog.Logger
}

func NewDesignService(ingredients ports.IngredientRepository, tacos ports.TacoRepository, carts ports.CartStore, logger zerolog.Logger) *DesignService {
	return &DesignService{ingredients: ingredients, tacos: tacos, carts: carts, logger: logger}
}

// Catalog returns all ingredients grouped by type for the design form.
func (s *DesignService) Catalog(ctx context.Context) (*ports.Catalog, error) {
	all, err := s.ingredients.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.IngredientType][]domain.Ingredient, len(domain.IngredientTypes))
	for _, ing := range all {
		byType[ing.Type] = append(byType[ing.Type], ing)
	}
	return &ports.Catalog{ByType: byType}, nil
}

// SubmitDesign validates the selection against the catalog, persists the taco,
// and appends it to the session's draft order.
func (s *DesignService) SubmitDesign(ctx context.Context, sessionID string, input ports.DesignInput) (*domain.Taco, error) {
	if len(input.Ingredients) == 0 {
		return nil, domain.ErrEmptyTaco
	}
	for _, id := range input.Ingredients {
		if _, err := s.ingredients.FindByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrUnknownIngredient) {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownIngredient, id)
			}
			return nil, err
		}
	}

	taco := &domain.Taco{
		Name:        input.Name,
		CreatedAt:   time.Now().UTC(),
		Ingredients: input.Ingredients,
	}
	saved, err := s.tacos.Save(ctx, taco)
	if err != nil {
		s.logger.Error().Err(err).Str("taco_name", input.Name).Msg("failed to save taco")
		return nil, err
	}

	draft, err := s.Draft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft.AddDesign(*saved)
	if err := s.carts.Put(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("taco_id", saved.ID).Str("session_id", sessionID).Msg("taco added to draft order")
	return saved, nil
}

// Draft returns the session's draft order, starting an empty one when the
// session has none yet.
func (s *DesignService) Draft(ctx context.Context, sessionID string) (*domain.Order, error) {
	draft, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return &domain.Order{}, nil
		}
		return nil, err
	}
	return draft, nil
}
