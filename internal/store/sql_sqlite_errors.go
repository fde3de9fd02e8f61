package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

const uniqueConstraintPrefix = "UNIQUE constraint failed: "

// classifyError maps a driver error onto the store sentinels:
//
//   - [sql.ErrNoRows]                      → [ErrNotFound]
//   - UNIQUE / PRIMARY KEY violation       → [*DuplicateError]
//   - FOREIGN KEY / CHECK / NOT NULL       → [ErrConstraint]
//   - SQLITE_BUSY / SQLITE_LOCKED          → [ErrTransient]
//   - anything else                        → wrapped "unexpected DB error"
//
// A nil error stays nil.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrTransient) ||
		errors.Is(err, ErrDuplicate) || errors.Is(err, ErrConstraint) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &DuplicateError{Field: duplicateField(sqliteErr.Error()), Err: err}
		case sqlite3.ErrConstraintForeignKey,
			sqlite3.ErrConstraintCheck,
			sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: %s", ErrConstraint, sqliteErr.Error())
		}

		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%w: %s", ErrTransient, sqliteErr.Error())
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}

// duplicateField extracts the column name from a message such as
// "UNIQUE constraint failed: users.username". Only the first column of a
// composite key is reported.
func duplicateField(message string) string {
	idx := strings.Index(message, uniqueConstraintPrefix)
	if idx < 0 {
		return ""
	}

	column := message[idx+len(uniqueConstraintPrefix):]
	column, _, _ = strings.Cut(column, ",")
	if _, after, ok := strings.Cut(column, "."); ok {
		column = after
	}

	return strings.TrimSpace(column)
}

// acquireError converts a failed connection checkout. Running out of the
// acquire budget is transient; cancellation of the caller's context is not.
func acquireError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("%w: connection pool acquire timeout", ErrTransient)
	}
	return classifyError(err)
}
