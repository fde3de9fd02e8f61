package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/my-movies/internal/adapter"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/internal/validators"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrConfiguration      = errors.New("configuration error")
	ErrUnavailable        = errors.New("service temporarily unavailable")
	ErrInternal           = errors.New("internal error")
	ErrVersionNotSet      = errors.New("app version is not specified")

	// ErrDuplicate matches store.DuplicateError values, whose message names
	// the offending field ("username already exists").
	ErrDuplicate = store.ErrDuplicate

	// ErrExternalAPI matches every failure of the metadata or barcode provider.
	ErrExternalAPI = adapter.ErrExternalAPI
)

// ValidationError is a rejected input. Its message is meant for the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes every *ValidationError match [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// mapError translates store, adapter and validator errors into the service
// taxonomy. notFound replaces store.ErrNotFound so that callers can tell a
// missing user from a missing catalog row.
func mapError(err, notFound error) error {
	var dup *store.DuplicateError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFound
	case errors.As(err, &dup):
		return dup
	case errors.Is(err, store.ErrConstraint):
		return validationError("referenced entry does not exist")
	case errors.Is(err, store.ErrTransient):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(err, validators.ErrValidation):
		return &ValidationError{Message: err.Error()}
	case errors.Is(err, adapter.ErrInvalidBarcode):
		return validationError("barcode must contain digits")
	case errors.Is(err, ErrExternalAPI),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrUnavailable),
		errors.Is(err, ErrInvalidResetToken):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
