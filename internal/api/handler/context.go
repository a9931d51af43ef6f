package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartCookie identifies the browsing session holding the draft order. It is
// deliberately separate from the auth cookie: a cart can be started before
// logging in.
const CartCookie = "TC_CART"

// ctxIdentity extracts the identity injected by the Auth middleware. Handlers
// behind the route guard can rely on it being present; its absence means the
// guard was misconfigured, which surfaces as 401 rather than a panic.
func ctxIdentity(c echo.Context) (username string, userID int64, err error) {
	username, _ = c.Get("username").(string)
	if username == "" {
		return "", 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(int64)
	return username, userID, nil
}

// cartID returns the session id for the draft order, minting a new one and
// setting the cookie when the browser does not carry one yet.
func cartID(c echo.Context) string {
	if cookie, err := c.Cookie(CartCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     CartCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
	})
	return sid
}
