package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie carries the signed session token issued at login.
const SessionCookie = "TC_SESSION"

// Auth parses the session cookie and injects the claims into context. A
// missing or invalid cookie is not an error here; the request proceeds
// unauthenticated and the Guard middleware decides whether that matters.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				// Expired or tampered cookie: drop it and continue as anonymous.
				c.SetCookie(&http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
				return next(c)
			}

			c.Set("username", claims["sub"])
			c.Set("roles", claims["roles"])
			if uid, ok := claims["uid"].(float64); ok {
				c.Set("user_id", int64(uid))
			}

			return next(c)
		}
	}
}
