package ports

import (
	"context"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

// DesignInput carries a submitted taco design.
type DesignInput struct {
	Name        string
	Ingredients []string // ingredient ids, in selection order
}

// Catalog is the ingredient list grouped for the design form.
type Catalog struct {
	ByType map[domain.IngredientType][]domain.Ingredient
}

// DesignService defines use-case operations for composing tacos.
type DesignService interface {
	// Catalog returns all ingredients grouped by type, in display order.
	Catalog(ctx context.Context) (*Catalog, error)

	// SubmitDesign validates the ingredient selection against the catalog,
	// persists the taco, and appends it to the session's draft order.
	SubmitDesign(ctx context.Context, sessionID string, input DesignInput) (*domain.Taco, error)

	// Draft returns the session's draft order, creating an empty one when the
	// session has none yet.
	Draft(ctx context.Context, sessionID string) (*domain.Order, error)
}
