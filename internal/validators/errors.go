package validators

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Error is a failed validation. Its message lists every violated rule
// and is safe to show to the caller.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is makes every *Error match [ErrValidation].
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}
