package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forefront/clientplus/internal/api/middleware"
	"github.com/forefront/clientplus/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a username proves the
// middleware ran, and deactivated accounts are cut off even when their token
// has not yet expired.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	ident, ok := c.Get(middleware.IdentityKey).(ports.Identity)
	if !ok || ident.Username == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if !ident.Active {
		return ports.Identity{}, echo.NewHTTPError(http.StatusForbidden, "account deactivated")
	}
	return ident, nil
}
