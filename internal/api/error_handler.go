package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

type errorPage struct {
	Message   string
	Retryable bool
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps known domain
// errors to status codes, logs unexpected errors without leaking details, and
// renders the HTML error page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, page := resolveError(err, log, c)
		if renderErr := c.Render(code, "error.html", page); renderErr != nil {
			_ = c.String(code, page.Message)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorPage) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorPage{Message: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, errorPage{
			Message:   "we could not save your order",
			Retryable: true,
		}
	case errors.Is(err, domain.ErrPersistenceRejected):
		return http.StatusUnprocessableEntity, errorPage{Message: "the order could not be accepted"}
	case errors.Is(err, domain.ErrInvalidOrderState):
		// Programming error: an unpersisted taco reached checkout.
		log.Error().Err(err).Str("path", c.Path()).Msg("order referenced unpersisted taco")
		return http.StatusInternalServerError, errorPage{Message: "internal error"}
	case errors.Is(err, domain.ErrUnknownIngredient):
		return http.StatusBadRequest, errorPage{Message: err.Error()}
	case errors.Is(err, domain.ErrEmptyTaco):
		return http.StatusBadRequest, errorPage{Message: "pick at least one ingredient"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorPage{Message: "user not found"}
	}

	// Unexpected error: log the real cause, render a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorPage{Message: "internal server error"}
}
