package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/api/session"
)

// TokenVerifier is implemented by the session service.
type TokenVerifier interface {
	Verify(token string) bool
}

const loginPath = "/admin/login"

// AdminGate protects admin routes. The login page stays reachable
// unauthenticated; every other admin path requires a valid session
// cookie and redirects to the login page otherwise. The gate never
// mutates session state.
func AdminGate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == loginPath || strings.HasPrefix(path, loginPath+"/") {
				return next(c)
			}

			cookie, err := c.Cookie(session.CookieName)
			if err != nil || !verifier.Verify(cookie.Value) {
				return c.Redirect(http.StatusFound, loginPath)
			}

			return next(c)
		}
	}
}
