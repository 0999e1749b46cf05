// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ubishop/config"
	"ubishop/internal/domain/entity"
	"ubishop/internal/domain/service"
	"ubishop/internal/errors"
)

const (
	tokenTypeAccess = "access"
	tokenIssuer     = "ubishop"
)

// ErrInvalidToken is returned for any token that fails parsing or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// accessClaims is the signed payload of an access token.
type accessClaims struct {
	Role string `json:"role"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    cfg.Auth.AccessTokenTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed HS256 access token for a user.
func (s *jwtService) GenerateAccessToken(userID int64, role entity.Role) (string, error) {
	now := s.now()
	claims := accessClaims{
		Role: role.String(),
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateToken parses the token, verifies signature and expiry, and maps the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidToken, "parse token: %v", err)
	}

	if claims.Type != tokenTypeAccess {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, errors.Wrapf(ErrInvalidToken, "bad subject %q", claims.Subject)
	}

	return &service.Claims{
		UserID:           userID,
		Role:             entity.Role(claims.Role),
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
