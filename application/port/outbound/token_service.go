package outbound

import "github.com/seastock/seastock/domain/entity"

// TokenClaims are the identity claims carried by a bearer credential.
type TokenClaims struct {
	UserID   string
	Username string
	Role     entity.Role
}

// TokenService issues and validates signed, time-limited bearer credentials.
type TokenService interface {
	GenerateToken(claims TokenClaims) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}
