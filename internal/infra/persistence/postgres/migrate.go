package postgres

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"ubishop/internal/errors"
	"ubishop/internal/infra/persistence/model"
)

// Statements AutoMigrate cannot express from struct tags.
var schemaStatements = []string{
	// Email uniqueness is case-insensitive, matching how login looks users up.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_usuarios_email_lower ON usuarios (lower(email))`,
	`ALTER TABLE ubicacion DROP CONSTRAINT IF EXISTS chk_ubicacion_coordenadas`,
	`ALTER TABLE ubicacion ADD CONSTRAINT chk_ubicacion_coordenadas
		CHECK (latitud BETWEEN -90 AND 90 AND longitud BETWEEN -180 AND 180)`,
}

// Migrate creates or updates every table and the extra constraints.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	for _, stmt := range schemaStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "exec %q", stmt)
		}
	}

	logger.InfoContext(ctx, "Schema migrated", slog.Int("tables", len(model.All())))

	return nil
}
