// Package service defines domain service interfaces whose concrete
// implementations live under internal/infra.
package service

import "propmart/internal/domain/entity"

// TokenClaims is the identity carried inside an access token.
type TokenClaims struct {
	UserID string
	Role   entity.Role
}

// TokenService issues and validates stateless access tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for the account.
	GenerateToken(user entity.User) (string, error)

	// ParseToken validates a token string and extracts its claims.
	ParseToken(token string) (*TokenClaims, error)
}
