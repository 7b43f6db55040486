package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/metrics"
)

// RoleReader is the slice of the user store the guard needs. The stored
// role, not the token, is the authorization signal.
type RoleReader interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireRole enforces that the authenticated caller's stored role equals
// role. Must run after Auth; without a resolved email the request fails 401.
func RequireRole(users RoleReader, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil || user.Role != role {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}
