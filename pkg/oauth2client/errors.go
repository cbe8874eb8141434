package oauth2client

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrClientNotFound is returned when no client matches the requested ID.
	ErrClientNotFound = errors.New("client not found")

	// ErrScopeNotFound is returned when no scope matches the requested name or ID.
	ErrScopeNotFound = errors.New("scope not found")

	// ErrDuplicate is returned when a create violates a uniqueness
	// constraint, such as a duplicate client name or redirect URI.
	ErrDuplicate = errors.New("duplicate record")
)

// IsNotFound reports whether err indicates a missing client or scope.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound) || errors.Is(err, ErrScopeNotFound)
}

// IsDuplicate reports whether err indicates a uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
