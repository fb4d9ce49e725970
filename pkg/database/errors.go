package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate into domain errors.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// PgErrorCode returns the SQLSTATE of a PostgreSQL error, or "".
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ConstraintName returns the violated constraint of a PostgreSQL error, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func IsUniqueViolation(err error) bool { return PgErrorCode(err) == UniqueViolation }

func IsForeignKeyViolation(err error) bool { return PgErrorCode(err) == ForeignKeyViolation }
