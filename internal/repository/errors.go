package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Typed storage errors, checked with errors.Is at the handler boundary.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrDuplicate      = errors.New("record already exists")
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
