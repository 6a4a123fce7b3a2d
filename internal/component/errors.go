package component

import (
	"errors"
	"fmt"

	"github.com/nerrad567/rigdesc/internal/vocab"
)

// Domain errors for the component package.
var (
	// ErrMissingRequiredField is returned when a mandatory field is unset.
	ErrMissingRequiredField = errors.New("component: missing required field")

	// ErrInvalidFilterSpec is returned when a filter's wavelength fields do
	// not match its filter type.
	ErrInvalidFilterSpec = errors.New("component: invalid filter spec")

	// ErrInvalidValue is returned when a field is set but out of range, or set
	// when the field it qualifies is unset.
	ErrInvalidValue = errors.New("component: invalid value")

	// ErrUnknownKind is returned when an object_type names no component variant.
	ErrUnknownKind = errors.New("component: unknown kind")

	// ErrKindMismatch is returned when a document carries a different
	// object_type from the variant it is decoded into.
	ErrKindMismatch = errors.New("component: kind mismatch")
)

// FieldError reports a rule violation on one field of one component.
type FieldError struct {
	Kind      vocab.ComponentKind
	Component string // component name, empty if the name itself is missing
	Field     string // JSON path relative to the component, e.g. "encoder_firmware.name"
	Err       error
}

func (e *FieldError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("%s.%s: %v", e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s.%s (%q): %v", e.Kind, e.Field, e.Component, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldError(c Component, field string, err error) error {
	return &FieldError{Kind: c.Kind(), Component: c.ComponentName(), Field: field, Err: err}
}
