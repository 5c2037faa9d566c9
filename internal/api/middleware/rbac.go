package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forefront/clientplus/internal/core/ports"
)

// RBAC enforces role-based access control on top of Auth. Missing identity,
// deactivated accounts and insufficient roles all yield the same response so
// the caller learns nothing beyond "forbidden".
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get(IdentityKey).(ports.Identity)
			if !ok || !ident.Active {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if _, ok := allowed[ident.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
