package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	apimw "github.com/tacocloud/tacocloud/internal/api/middleware"
)

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubAuthService{})

	c, rec := postForm(e, "/login", url.Values{
		"username": {"ada"},
		"password": {"s3cret"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/design" {
		t.Fatalf("expected redirect to /design, got %s", loc)
	}

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == apimw.SessionCookie {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value != "token" {
		t.Fatalf("expected session cookie to be set, got %+v", sessionCookie)
	}
	if !sessionCookie.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubAuthService{})

	c, rec := postForm(e, "/login", url.Values{
		"username": {"ada"},
		"password": {"wrong"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid username or password") {
		t.Fatalf("expected login error message in body")
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == apimw.SessionCookie && cookie.Value != "" {
			t.Fatalf("no session cookie must be set on failed login")
		}
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubAuthService{})

	c, rec := postForm(e, "/logout", url.Values{})
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == apimw.SessionCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be expired")
	}
}
