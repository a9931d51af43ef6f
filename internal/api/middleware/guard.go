package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Rule maps a path pattern to the role required to reach it. An empty Role
// marks the pattern public. Patterns ending in "/*" match by prefix,
// everything else matches the exact path or any subpath of it.
type Rule struct {
	Pattern string
	Role    string
}

// Guard enforces role-based access before route handlers run. Rules are
// consulted in order; the first matching rule wins and unmatched paths are
// public. Unauthenticated requests to protected paths are redirected to the
// login form; authenticated requests lacking the role get 403.
func Guard(rules []Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule, matched := match(rules, c.Request().URL.Path)
			if !matched || rule.Role == "" {
				return next(c)
			}

			roles, _ := c.Get("roles").(string)
			if roles == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			if !hasRole(roles, rule.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

func match(rules []Rule, path string) (Rule, bool) {
	for _, rule := range rules {
		if prefix, ok := strings.CutSuffix(rule.Pattern, "/*"); ok {
			if strings.HasPrefix(path, prefix) {
				return rule, true
			}
			continue
		}
		if path == rule.Pattern || strings.HasPrefix(path, rule.Pattern+"/") {
			return rule, true
		}
	}
	return Rule{}, false
}

func hasRole(roles, want string) bool {
	for _, r := range strings.Split(roles, ",") {
		if r == want {
			return true
		}
	}
	return false
}
