package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tacocloud/tacocloud/internal/api/metrics"
	"github.com/tacocloud/tacocloud/internal/core/domain"
	"github.com/tacocloud/tacocloud/internal/core/ports"
)

// DesignHandler serves the taco design form.
type DesignHandler struct {
	designService ports.DesignService
	authService   ports.AuthService
}

func NewDesignHandler(designService ports.DesignService, authService ports.AuthService) *DesignHandler {
	return &DesignHandler{designService: designService, authService: authService}
}

type designForm struct {
	Name        string   `form:"name" validate:"required,min=5"`
	Ingredients []string `form:"ingredients" validate:"required,min=1"`
}

type ingredientGroup struct {
	Label       string
	Ingredients []domain.Ingredient
}

type designPage struct {
	User       *domain.User
	Groups     []ingredientGroup
	Name       string
	DraftCount int
	Error      string
}

// Form handles GET /design: the catalog grouped by type plus the current
// user's profile.
func (h *DesignHandler) Form(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, err := h.buildPage(c.Request().Context(), username, cartID(c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "design.html", page)
}

// Submit handles POST /design: validate, persist the taco, append it to the
// session draft, and send the user to the order review page.
func (h *DesignHandler) Submit(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	sid := cartID(c)

	var form designForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		page, buildErr := h.buildPage(c.Request().Context(), username, sid)
		if buildErr != nil {
			return buildErr
		}
		page.Name = form.Name
		page.Error = err.Error()
		return c.Render(http.StatusBadRequest, "design.html", page)
	}

	_, err = h.designService.SubmitDesign(c.Request().Context(), sid, ports.DesignInput{
		Name:        form.Name,
		Ingredients: form.Ingredients,
	})
	if err != nil {
		return err
	}

	metrics.TacosDesignedTotal.Inc()
	return c.Redirect(http.StatusFound, "/orders/current")
}

func (h *DesignHandler) buildPage(ctx context.Context, username, sid string) (*designPage, error) {
	user, err := h.authService.Profile(ctx, username)
	if err != nil {
		return nil, err
	}

	catalog, err := h.designService.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]ingredientGroup, 0, len(domain.IngredientTypes))
	for _, t := range domain.IngredientTypes {
		groups = append(groups, ingredientGroup{Label: groupLabel(t), Ingredients: catalog.ByType[t]})
	}

	draft, err := h.designService.Draft(ctx, sid)
	if err != nil {
		return nil, err
	}

	return &designPage{User: user, Groups: groups, DraftCount: len(draft.Tacos)}, nil
}

func groupLabel(t domain.IngredientType) string {
	switch t {
	case domain.TypeWrap:
		return "Designate your wrap"
	case domain.TypeProtein:
		return "Pick your protein"
	case domain.TypeVeggies:
		return "Determine your veggies"
	case domain.TypeCheese:
		return "Choose your cheese"
	case domain.TypeSauce:
		return "Select your sauce"
	default:
		return string(t)
	}
}
