package instrument

import (
	"errors"
	"fmt"
	"slices"

	"github.com/nerrad567/rigdesc/internal/component"
	"github.com/nerrad567/rigdesc/internal/geometry"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// Builder collects instrument fields and components. Nothing is validated
// until Build.
type Builder struct {
	fields     Fields
	components []component.Component
	errs       []error
}

// NewBuilder starts an instrument with the given identifier.
func NewBuilder(id string) *Builder {
	return &Builder{fields: Fields{InstrumentID: id}}
}

// From returns a Builder seeded with a copy of x, for building an edited
// instrument.
func From(x *Instrument) *Builder {
	return &Builder{
		fields: Fields{
			InstrumentID:       x.id,
			ModificationDate:   x.date,
			CoordinateSystem:   x.coords.Clone(),
			Modalities:         slices.Clone(x.modalities),
			Notes:              clonePtr(x.notes),
			TemperatureControl: x.tempCtl.clone(),
		},
		components: x.Components(),
	}
}

// InstrumentID replaces the identifier.
func (b *Builder) InstrumentID(id string) *Builder {
	b.fields.InstrumentID = id
	return b
}

// ModificationDate sets the modification date.
func (b *Builder) ModificationDate(d Date) *Builder {
	b.fields.ModificationDate = d
	return b
}

// CoordinateSystem sets the instrument coordinate system.
func (b *Builder) CoordinateSystem(cs geometry.CoordinateSystem) *Builder {
	b.fields.CoordinateSystem = cs.Clone()
	return b
}

// Modalities adds modality tags. Duplicates are dropped at Build.
func (b *Builder) Modalities(m ...vocab.Modality) *Builder {
	b.fields.Modalities = append(b.fields.Modalities, m...)
	return b
}

// ClearModalities removes every modality added so far.
func (b *Builder) ClearModalities() *Builder {
	b.fields.Modalities = nil
	return b
}

// Notes sets the free-text notes.
func (b *Builder) Notes(notes string) *Builder {
	b.fields.Notes = &notes
	return b
}

// TemperatureControl sets the temperature control description.
func (b *Builder) TemperatureControl(tc TemperatureControl) *Builder {
	b.fields.TemperatureControl = tc.clone()
	return b
}

// Add appends components in order.
func (b *Builder) Add(components ...component.Component) *Builder {
	for _, c := range components {
		b.components = append(b.components, component.Clone(c))
	}
	return b
}

// Replace swaps the top-level component called name for c. Build fails with
// ErrComponentNotFound if there is no such component.
func (b *Builder) Replace(name string, c component.Component) *Builder {
	i := b.indexOf(name)
	if i < 0 {
		b.errs = append(b.errs, fmt.Errorf("replace: %w: %q", ErrComponentNotFound, name))
		return b
	}
	b.components[i] = component.Clone(c)
	return b
}

// Remove drops the top-level component called name. Build fails with
// ErrComponentNotFound if there is no such component.
func (b *Builder) Remove(name string) *Builder {
	i := b.indexOf(name)
	if i < 0 {
		b.errs = append(b.errs, fmt.Errorf("remove: %w: %q", ErrComponentNotFound, name))
		return b
	}
	b.components = slices.Delete(b.components, i, i+1)
	return b
}

func (b *Builder) indexOf(name string) int {
	return slices.IndexFunc(b.components, func(c component.Component) bool {
		return c != nil && c.ComponentName() == name
	})
}

// Build validates everything collected and returns the instrument.
func (b *Builder) Build() (*Instrument, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return New(b.fields, b.components...)
}
