package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNothingToUpdate means the caller supplied no recognized fields.
var ErrNothingToUpdate = errors.New("nothing to update")

// ValidationError is a field-level input failure detected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError is a uniqueness violation (duplicate slug, brand name, ...).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError means the referenced id (or slug) has no row.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func validationErr(field, msg string) error { return &ValidationError{Field: field, Message: msg} }
func conflictErr(msg string) error          { return &ConflictError{Message: msg} }
func notFoundErr(msg string) error          { return &NotFoundError{Message: msg} }

const uniqueViolation = "23505"

// isUniqueViolation recognizes the duplicate-key signal so callers can
// report "already exists" instead of a generic server error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
