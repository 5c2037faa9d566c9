package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/forefront/clientplus/internal/core/ports"
)

// IdentityKey is the echo context key holding the verified caller identity.
const IdentityKey = "identity"

// Auth validates the session JWT and injects the verified identity into the
// request context. Identity is never taken from request payloads.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["user_id"].(float64)
			username, _ := claims["username"].(string)
			role, _ := claims["role"].(string)
			active, _ := claims["active"].(bool)

			c.Set(IdentityKey, ports.Identity{
				UserID:   int64(userID),
				Username: username,
				Role:     role,
				Active:   active,
			})

			return next(c)
		}
	}
}
