package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves the public landing page.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

type homePage struct {
	Username string
}

func (h *HomeHandler) Home(c echo.Context) error {
	username, _ := c.Get("username").(string)
	return c.Render(http.StatusOK, "home.html", homePage{Username: username})
}
