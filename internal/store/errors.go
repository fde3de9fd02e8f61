package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match one row produces
	// an empty result set, including rows that exist but belong to another user.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is matched by every [DuplicateError].
	ErrDuplicate = errors.New("duplicate value")

	// ErrConstraint is returned when a foreign key, check or not-null
	// constraint rejects the written row.
	ErrConstraint = errors.New("constraint violation")

	// ErrTransient is returned when the database is busy or no pooled
	// connection became available within the acquire timeout. The operation
	// may succeed if retried.
	ErrTransient = errors.New("database temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// DuplicateError reports a unique constraint violation on Field
// (e.g. "username", "email"). It matches [ErrDuplicate] with [errors.Is].
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}
