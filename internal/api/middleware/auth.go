package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traintrack/training-api/internal/api/metrics"
	"github.com/traintrack/training-api/internal/token"
)

// RequireAuth protects the API routes. It validates the bearer token from the
// auth cookie and injects the user id into context. Failures are a uniform
// 401; the client learns nothing about why the token was rejected.
func RequireAuth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Request().Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			userID, err := issuer.Verify(cookie.Value)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
