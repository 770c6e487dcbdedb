package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/traintrack/training-api/internal/api/metrics"
	"github.com/traintrack/training-api/internal/token"
)

const (
	loginPath     = "/auth/login"
	dashboardPath = "/dashboard"
)

// Gate is the pre-routing checkpoint for the page routes. It decides purely
// from the cookie, the token signature/expiry, and the path class, with no store
// access, so it stays cheap on every request:
//
//   - no token on a dashboard page   → clear cookie, redirect to login
//   - no token elsewhere             → pass through
//   - invalid token anywhere         → clear cookie, redirect to login
//   - valid token on an auth page    → redirect to dashboard
//   - valid token elsewhere          → pass through, user id in context
//
// Verification is the same cryptographic routine the API middleware uses;
// there is deliberately no decode-only shortcut.
func Gate(issuer *token.Issuer, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			isAuthPage := strings.HasPrefix(path, "/auth")
			isDashboardPage := strings.HasPrefix(path, dashboardPath)

			cookie, err := c.Request().Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				if isDashboardPage {
					c.SetCookie(ClearedTokenCookie(secure))
					return c.Redirect(http.StatusFound, loginPath)
				}
				return next(c)
			}

			userID, err := issuer.Verify(cookie.Value)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				c.SetCookie(ClearedTokenCookie(secure))
				return c.Redirect(http.StatusFound, loginPath)
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			if isAuthPage {
				return c.Redirect(http.StatusFound, dashboardPath)
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
