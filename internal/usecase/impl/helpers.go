// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ubishop/internal/delivery/context"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/errors"
)

// requestLogger returns the request-scoped logger if present.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// requireText fails with ErrValidationFailed naming every value that is
// empty once trimmed.
func requireText(values map[string]string) error {
	blank := map[string]string{}
	for field, value := range values {
		if strings.TrimSpace(value) == "" {
			blank[field] = "notblank"
		}
	}
	if len(blank) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(blank)
}

// translate maps repository sentinels onto the domain errors handlers render.
// Anything else is wrapped with op.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrReviewNotFound):
		return domainerrors.ErrReviewNotFound
	case errors.Is(err, repository.ErrStoreNotFound):
		return domainerrors.ErrStoreNotFound
	case errors.Is(err, repository.ErrLocationNotFound):
		return domainerrors.ErrLocationNotFound
	case errors.Is(err, repository.ErrPlanNotFound):
		return domainerrors.ErrPlanNotFound
	case errors.Is(err, repository.ErrEmailTaken):
		return domainerrors.ErrEmailAlreadyRegistered
	case errors.Is(err, repository.ErrStoreOwnerTaken):
		return domainerrors.ErrStoreAlreadyExists
	case errors.Is(err, repository.ErrLocationExists):
		return domainerrors.ErrLocationAlreadyExists
	default:
		return errors.Wrap(err, op)
	}
}
