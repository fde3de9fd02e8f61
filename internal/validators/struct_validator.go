package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// instance returns the process-wide validator. validator.Validate caches
// struct metadata, so a single instance is shared.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.String {
				return true
			}
			return strings.TrimSpace(field.String()) != ""
		})
	})
	return validate
}

type structValidator struct{}

// NewStructValidator returns a [Validator] that enforces the `validate`
// struct tags of the given value.
func NewStructValidator() Validator {
	return &structValidator{}
}

// Validate implements [Validator]. When fields are given only those struct
// fields (Go names, dotted for nested structs) are checked.
func (v *structValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return &Error{Message: "request body is required"}
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = instance().StructPartialCtx(ctx, obj, fields...)
	} else {
		err = instance().StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		logger.FromContext(ctx).Err(err).Str("func", "*structValidator.Validate").Msg("validator failure")
		return fmt.Errorf("validate %T: %w", obj, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describe(fe))
	}
	return &Error{Message: strings.Join(messages, "; ")}
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "required_if":
		return field + " is required when " + strings.Replace(fe.Param(), " ", " is ", 1)
	case "excluded_if":
		return field + " must not be set when " + strings.Replace(fe.Param(), " ", " is ", 1)
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if isText(fe) {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isText(fe) {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func isText(fe validator.FieldError) bool {
	kind := fe.Kind()
	if kind == reflect.Pointer && fe.Type() != nil {
		kind = fe.Type().Elem().Kind()
	}
	return kind == reflect.String
}
