package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, class 23 (integrity constraint violation).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Helper functions classifying PostgreSQL errors into the closed set of
// constraint kinds the domain understands. GORM sentinels cover drivers with
// error translation enabled; the SQLSTATE check covers raw pgconn errors.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgNotNullViolation
	}

	return false
}

// constraintField derives the conflicting column name from a PostgreSQL
// constraint name ("users_email_key" -> "email"). Falls back to the given
// default when the driver reports no constraint name.
func constraintField(err error, tableName, fallback string) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.ConstraintName == "" {
		return fallback
	}

	field := strings.TrimPrefix(pgErr.ConstraintName, tableName+"_")
	for _, suffix := range []string{"_key", "_idx", "_fkey"} {
		field = strings.TrimSuffix(field, suffix)
	}

	if field == "" {
		return fallback
	}

	return field
}
