package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"ubishop/internal/delivery/api/response"
	deliverycontext "ubishop/internal/delivery/context"
	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/service"
	"ubishop/internal/usecase"
)

const actorKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller as
// the request actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthenticated(c, "Authorization header is missing")
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return unauthenticated(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return unauthenticated(c, "Invalid or expired token")
		}

		c.Set(actorKey, usecase.Actor{UserID: claims.UserID, Role: claims.Role})
		deliverycontext.AddLogAttrs(c, m.logger, slog.Int64("user_id", claims.UserID))

		return next(c)
	}
}

func unauthenticated(c echo.Context, reason string) error {
	return response.Error(c, domainerrors.ErrUnauthenticated.HTTPCode(),
		domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message(), reason)
}

// RequireRole only lets through actors holding one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return unauthenticated(c, "role information missing")
			}
			if !slices.Contains(roles, actor.Role) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated caller set by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorKey).(usecase.Actor)

	return actor, ok
}
