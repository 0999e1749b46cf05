package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"ubishop/internal/errors"
)

// PostgreSQL SQLSTATE codes.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

// pgConstraint returns the SQLSTATE code and constraint name of a driver error.
func pgConstraint(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}

	return pgErr.Code, pgErr.ConstraintName, true
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _, ok := pgConstraint(err)

	return ok && code == sqlStateUniqueViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _, ok := pgConstraint(err)

	return ok && code == sqlStateNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _, ok := pgConstraint(err)

	return ok && code == sqlStateCheckViolation
}
