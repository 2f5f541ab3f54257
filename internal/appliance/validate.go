package appliance

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// ErrInvalidSpec wraps every construction failure caused by field constraints.
var ErrInvalidSpec = errors.New(messages.ValidationFailed)

var validate = newValidator()

// newValidator reports fields by their json names so errors match the input keys.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("finite", isFinite)
	return v
}

// isFinite rejects NaN and infinities, which pass the numeric comparison tags.
func isFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// String renders the field and the constraint it failed.
func (e FieldError) String() string {
	var reason string
	switch e.Tag {
	case "required":
		reason = messages.ValidationRequired
	case "gte":
		reason = fmt.Sprintf(messages.ValidationGTEFmt, e.Param)
	case "gt":
		reason = fmt.Sprintf(messages.ValidationGTFmt, e.Param)
	case "finite":
		reason = messages.ValidationFinite
	default:
		reason = fmt.Sprintf(messages.ValidationOtherFmt, e.Tag)
	}
	return fmt.Sprintf(messages.ValidationFieldFmt, e.Field, reason)
}

// ValidationError lists every field of a spec that violates its constraint.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.String())
	}
	return ErrInvalidSpec.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets callers match ErrInvalidSpec with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidSpec
}

// FieldNames returns the rejected field keys in report order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		names = append(names, field.Field)
	}
	return names
}

// validateSpec runs struct-tag validation and converts failures to a ValidationError.
func validateSpec(spec any) error {
	err := validate.Struct(spec)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}
