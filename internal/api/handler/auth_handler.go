package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tacocloud/tacocloud/internal/api/metrics"
	apimw "github.com/tacocloud/tacocloud/internal/api/middleware"
	"github.com/tacocloud/tacocloud/internal/core/domain"
	"github.com/tacocloud/tacocloud/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type loginPage struct {
	Username string
	Error    string
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// Login authenticates the form credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", loginPage{Error: "invalid form submission"})
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
			return c.Render(http.StatusUnauthorized, "login.html", loginPage{
				Username: form.Username,
				Error:    "invalid username or password",
			})
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("ok").Inc()
	c.SetCookie(&http.Cookie{
		Name:     apimw.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/design")
}

// Logout clears the session cookie and redirects home.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: apimw.SessionCookie, Value: "", Path: "/", MaxAge: -1})
	return c.Redirect(http.StatusFound, "/")
}

type registerForm struct {
	Username string `form:"username" validate:"required,min=3"`
	Password string `form:"password" validate:"required,min=6"`
	Fullname string `form:"fullname"`
	Street   string `form:"street"`
	City     string `form:"city"`
	State    string `form:"state"`
	Zip      string `form:"zip"`
	Phone    string `form:"phone"`
}

type registerPage struct {
	Username string
	Fullname string
	Error    string
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", registerPage{})
}

// Register creates an account and sends the user to the login form.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", registerPage{Error: "invalid form submission"})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", registerPage{
			Username: form.Username,
			Fullname: form.Fullname,
			Error:    err.Error(),
		})
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: form.Username,
		Password: form.Password,
		Fullname: form.Fullname,
		Street:   form.Street,
		City:     form.City,
		State:    form.State,
		Zip:      form.Zip,
		Phone:    form.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.Render(http.StatusConflict, "register.html", registerPage{
				Username: form.Username,
				Fullname: form.Fullname,
				Error:    "that username is taken",
			})
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}
