// Package middleware contains echo middleware for the development server.
package middleware

import (
	"strings"

	"propmart/internal/devserver/response"
	"propmart/internal/domain/entity"
	"propmart/internal/domain/service"
	"propmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate and read by handlers.
const (
	ActorContextKey = "actor"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resulting actor
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing.")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token.")
		}

		claims, err := m.tokenSvc.ParseToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token.")
		}

		c.Set(ActorContextKey, usecase.Actor{ID: claims.UserID, Role: claims.Role})

		return next(c)
	}
}

// RequireRole only lets requests through whose actor holds one of the
// given roles. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(ActorContextKey).(usecase.Actor)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing.")
			}

			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "PERMISSION_DENIED", "You do not have permission to perform this action.")
		}
	}
}

// ActorFromContext returns the authenticated actor stored by Authenticate.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(ActorContextKey).(usecase.Actor)

	return actor, ok
}
