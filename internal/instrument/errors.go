package instrument

import (
	"errors"
	"fmt"
)

// Domain errors for the instrument package.
var (
	// ErrInstrumentValidation matches every *ValidationError.
	ErrInstrumentValidation = errors.New("instrument: validation failed")

	// ErrComponentNotFound is returned when no component has the requested name.
	ErrComponentNotFound = errors.New("instrument: component not found")

	// ErrMissingValue is returned when a mandatory instrument field is unset.
	ErrMissingValue = errors.New("instrument: missing value")

	// ErrDuplicateName is returned when two components share a name.
	ErrDuplicateName = errors.New("instrument: duplicate component name")

	// ErrUnresolvedTransform is returned when a component's transform refers
	// to a coordinate system other than the instrument's.
	ErrUnresolvedTransform = errors.New("instrument: transform does not resolve to instrument coordinate system")

	// ErrInvalidDate is returned for dates that do not exist on the calendar
	// or are not written as YYYY-MM-DD.
	ErrInvalidDate = errors.New("instrument: invalid date")
)

// Invariant names the rule a ValidationError violated.
type Invariant string

// Invariants checked when an instrument is built.
const (
	InvariantInstrumentID       Invariant = "instrument_id"
	InvariantUniqueNames        Invariant = "unique_component_names"
	InvariantTransformResolves  Invariant = "transform_resolves"
	InvariantModalities         Invariant = "modalities"
	InvariantDataInterface      Invariant = "data_interface"
	InvariantModificationDate   Invariant = "modification_date"
	InvariantCoordinateSystem   Invariant = "coordinate_system"
	InvariantTemperatureControl Invariant = "temperature_control"
	InvariantComponentSchema    Invariant = "component_schema"
)

// ValidationError describes the first rule an instrument failed.
//
// It matches ErrInstrumentValidation with errors.Is and also unwraps to Err,
// so callers can test for the cause (e.g. vocab.ErrUnknownEnumerationValue).
type ValidationError struct {
	Invariant Invariant
	Field     string // offending field, if any
	Component string // offending component name, if any
	Err       error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%v: %s", ErrInstrumentValidation, e.Invariant)
	if e.Component != "" {
		msg += fmt.Sprintf(": component %q", e.Component)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %s", e.Field)
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns both the package sentinel and the cause.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrInstrumentValidation, e.Err}
}
