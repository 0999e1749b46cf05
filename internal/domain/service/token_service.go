package service

import (
	"github.com/golang-jwt/jwt/v5"

	"ubishop/internal/domain/entity"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID int64
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID int64, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
