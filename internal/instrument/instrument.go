package instrument

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/nerrad567/rigdesc/internal/component"
	"github.com/nerrad567/rigdesc/internal/geometry"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// TemperatureControl describes the instrument's temperature regulation.
type TemperatureControl struct {
	Enabled      bool                   `json:"enabled"`
	Setpoint     *float64               `json:"setpoint"`
	SetpointUnit *vocab.TemperatureUnit `json:"setpoint_unit"`
}

func (tc *TemperatureControl) clone() *TemperatureControl {
	if tc == nil {
		return nil
	}
	out := *tc
	if tc.Setpoint != nil {
		v := *tc.Setpoint
		out.Setpoint = &v
	}
	if tc.SetpointUnit != nil {
		u := *tc.SetpointUnit
		out.SetpointUnit = &u
	}
	return &out
}

// Fields holds the top-level attributes of an instrument.
type Fields struct {
	InstrumentID       string
	ModificationDate   Date
	CoordinateSystem   geometry.CoordinateSystem
	Modalities         []vocab.Modality
	Notes              *string
	TemperatureControl *TemperatureControl
}

// Instrument is a validated, immutable instrument description.
type Instrument struct {
	id         string
	date       Date
	coords     geometry.CoordinateSystem
	modalities []vocab.Modality
	notes      *string
	tempCtl    *TemperatureControl
	components []component.Component
}

// New validates f and components and returns the instrument.
//
// The arguments are copied; later changes to them do not affect the result.
// On failure New returns a *ValidationError naming the violated invariant
// and never a partially built instrument.
func New(f Fields, components ...component.Component) (*Instrument, error) {
	inst := &Instrument{
		id:    f.InstrumentID,
		date:  f.ModificationDate,
		notes: clonePtr(f.Notes),
	}

	if strings.TrimSpace(f.InstrumentID) == "" {
		return nil, &ValidationError{Invariant: InvariantInstrumentID, Field: "instrument_id", Err: ErrMissingValue}
	}
	if f.ModificationDate.IsZero() {
		return nil, &ValidationError{Invariant: InvariantModificationDate, Field: "modification_date", Err: ErrMissingValue}
	}
	if _, err := NewDate(f.ModificationDate.Year, f.ModificationDate.Month, f.ModificationDate.Day); err != nil {
		return nil, &ValidationError{Invariant: InvariantModificationDate, Field: "modification_date", Err: err}
	}

	cs, err := f.CoordinateSystem.Validate()
	if err != nil {
		return nil, &ValidationError{Invariant: InvariantCoordinateSystem, Field: "coordinate_system", Err: err}
	}
	inst.coords = cs

	if inst.modalities, err = canonicalModalities(f.Modalities); err != nil {
		return nil, err
	}
	if inst.tempCtl, err = checkTemperatureControl(f.TemperatureControl); err != nil {
		return nil, err
	}
	if inst.components, err = checkComponents(components); err != nil {
		return nil, err
	}
	if err := checkUniqueNames(inst.components); err != nil {
		return nil, err
	}
	if err := checkTransforms(cs, inst.components); err != nil {
		return nil, err
	}
	return inst, nil
}

// canonicalModalities returns the set in registry order without duplicates.
func canonicalModalities(in []vocab.Modality) ([]vocab.Modality, error) {
	if len(in) == 0 {
		return nil, &ValidationError{Invariant: InvariantModalities, Field: "modalities", Err: ErrMissingValue}
	}
	set := make(map[vocab.Modality]bool, len(in))
	for i, m := range in {
		c, err := m.Canonical()
		if err != nil {
			return nil, &ValidationError{
				Invariant: InvariantModalities,
				Field:     fmt.Sprintf("modalities[%d]", i),
				Err:       err,
			}
		}
		set[c] = true
	}
	out := make([]vocab.Modality, 0, len(set))
	for _, m := range vocab.AllModalities() {
		if set[m] {
			out = append(out, m)
		}
	}
	return out, nil
}

func checkTemperatureControl(tc *TemperatureControl) (*TemperatureControl, error) {
	if tc == nil {
		return nil, nil
	}
	out := tc.clone()
	switch {
	case out.Setpoint != nil && out.SetpointUnit == nil:
		return nil, &ValidationError{
			Invariant: InvariantTemperatureControl,
			Field:     "temperature_control.setpoint_unit",
			Err:       ErrMissingValue,
		}
	case out.Setpoint == nil && out.SetpointUnit != nil:
		return nil, &ValidationError{
			Invariant: InvariantTemperatureControl,
			Field:     "temperature_control.setpoint_unit",
			Err:       fmt.Errorf("%w: unit set without a setpoint", component.ErrInvalidValue),
		}
	case out.Setpoint != nil && (math.IsNaN(*out.Setpoint) || math.IsInf(*out.Setpoint, 0)):
		return nil, &ValidationError{
			Invariant: InvariantTemperatureControl,
			Field:     "temperature_control.setpoint",
			Err:       fmt.Errorf("%w: %v is not a finite number", component.ErrInvalidValue, *out.Setpoint),
		}
	}
	if out.SetpointUnit != nil {
		u, err := out.SetpointUnit.Canonical()
		if err != nil {
			return nil, &ValidationError{
				Invariant: InvariantTemperatureControl,
				Field:     "temperature_control.setpoint_unit",
				Err:       err,
			}
		}
		out.SetpointUnit = &u
	}
	return out, nil
}

// checkComponents validates every component and returns the canonical copies.
func checkComponents(in []component.Component) ([]component.Component, error) {
	out := make([]component.Component, 0, len(in))
	for i, c := range in {
		valid, err := component.Validate(c)
		if err != nil {
			return nil, componentError(i, err)
		}
		out = append(out, valid)
	}
	return out, nil
}

// componentError classifies a component validation failure. Unknown
// data_interface values are reported against their own invariant.
func componentError(index int, err error) error {
	ve := &ValidationError{Invariant: InvariantComponentSchema, Err: err}
	var fe *component.FieldError
	if errors.As(err, &fe) {
		ve.Component = fe.Component
		ve.Field = fe.Field
		if fe.Field == "data_interface" && errors.Is(err, vocab.ErrUnknownEnumerationValue) {
			ve.Invariant = InvariantDataInterface
		}
	}
	if ve.Component == "" {
		ve.Component = fmt.Sprintf("components[%d]", index)
	}
	return ve
}

// checkUniqueNames checks names across all components, including the ones
// owned by assemblies.
func checkUniqueNames(components []component.Component) error {
	seen := make(map[string]vocab.ComponentKind)
	for _, top := range components {
		err := component.Walk(top, func(c component.Component) error {
			name := c.ComponentName()
			if kind, dup := seen[name]; dup {
				return &ValidationError{
					Invariant: InvariantUniqueNames,
					Field:     "name",
					Component: name,
					Err:       fmt.Errorf("%w: %s and %s both named %q", ErrDuplicateName, kind, c.Kind(), name),
				}
			}
			seen[name] = c.Kind()
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// checkTransforms checks that every positioned component maps into cs. A
// component's coordinate system must match cs in full, not only by name.
func checkTransforms(cs geometry.CoordinateSystem, components []component.Component) error {
	for _, top := range components {
		err := component.Walk(top, func(c component.Component) error {
			target, t, ok := component.Positioned(c)
			if !ok {
				return nil
			}
			if target.Name != cs.Name {
				return &ValidationError{
					Invariant: InvariantTransformResolves,
					Field:     "coordinate_system",
					Component: c.ComponentName(),
					Err:       fmt.Errorf("%w: uses %q, instrument uses %q", ErrUnresolvedTransform, target.Name, cs.Name),
				}
			}
			if !target.Equal(cs) {
				return &ValidationError{
					Invariant: InvariantTransformResolves,
					Field:     "coordinate_system",
					Component: c.ComponentName(),
					Err:       fmt.Errorf("%w: %q is defined differently from the instrument's", ErrUnresolvedTransform, cs.Name),
				}
			}
			if err := cs.Resolves(t); err != nil {
				return &ValidationError{
					Invariant: InvariantTransformResolves,
					Field:     "transform",
					Component: c.ComponentName(),
					Err:       err,
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// InstrumentID returns the instrument identifier.
func (x *Instrument) InstrumentID() string { return x.id }

// ModificationDate returns the date the description was last changed.
func (x *Instrument) ModificationDate() Date { return x.date }

// CoordinateSystem returns a copy of the instrument's coordinate system.
func (x *Instrument) CoordinateSystem() geometry.CoordinateSystem { return x.coords.Clone() }

// Modalities returns the modality set in registry order.
func (x *Instrument) Modalities() []vocab.Modality { return slices.Clone(x.modalities) }

// HasModality reports whether m (in any accepted spelling) is in the set.
func (x *Instrument) HasModality(m vocab.Modality) bool {
	c, err := m.Canonical()
	if err != nil {
		return false
	}
	return slices.Contains(x.modalities, c)
}

// Notes returns the free-text notes, or nil if unset.
func (x *Instrument) Notes() *string { return clonePtr(x.notes) }

// TemperatureControl returns a copy of the temperature control, or nil.
func (x *Instrument) TemperatureControl() *TemperatureControl { return x.tempCtl.clone() }

// Components returns copies of the top-level components in order.
func (x *Instrument) Components() []component.Component {
	out := make([]component.Component, len(x.components))
	for i, c := range x.components {
		out[i] = component.Clone(c)
	}
	return out
}

// ComponentsOfKind returns copies of every component of the given kind,
// including components owned by assemblies, in document order.
func (x *Instrument) ComponentsOfKind(kind vocab.ComponentKind) []component.Component {
	var out []component.Component
	for _, top := range x.components {
		_ = component.Walk(top, func(c component.Component) error {
			if c.Kind() == kind {
				out = append(out, component.Clone(c))
			}
			return nil
		})
	}
	return out
}

// FindComponent returns a copy of the component with exactly this name,
// searching owned sub-components too.
func (x *Instrument) FindComponent(name string) (component.Component, error) {
	var found component.Component
	errFound := errors.New("found")
	for _, top := range x.components {
		err := component.Walk(top, func(c component.Component) error {
			if c.ComponentName() == name {
				found = c
				return errFound
			}
			return nil
		})
		if err != nil {
			return component.Clone(found), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
}

// Equal reports whether both instruments have equal fields and equal
// components in the same order.
func (x *Instrument) Equal(other *Instrument) bool {
	if x == nil || other == nil {
		return x == other
	}
	if x.id != other.id || x.date != other.date || !x.coords.Equal(other.coords) {
		return false
	}
	if !slices.Equal(x.modalities, other.modalities) {
		return false
	}
	if !equalPtr(x.notes, other.notes) || !equalTemperatureControl(x.tempCtl, other.tempCtl) {
		return false
	}
	return slices.EqualFunc(x.components, other.components, component.Equal)
}

func equalTemperatureControl(a, b *TemperatureControl) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Enabled == b.Enabled && equalPtr(a.Setpoint, b.Setpoint) && equalPtr(a.SetpointUnit, b.SetpointUnit)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
