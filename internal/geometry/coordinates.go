package geometry

import (
	"fmt"
	"slices"

	"github.com/nerrad567/rigdesc/internal/vocab"
)

// Axis is one named axis of a coordinate system and the anatomical direction
// its positive values point to.
type Axis struct {
	Name      string                   `json:"name"`
	Direction vocab.AnatomicalRelative `json:"direction"`
}

// CoordinateSystem is a named frame of reference. Components refer to it by
// name; its dimension is the number of axes.
type CoordinateSystem struct {
	Name     string         `json:"name"`
	Origin   string         `json:"origin"`
	AxisUnit vocab.SizeUnit `json:"axis_unit"`
	Axes     []Axis         `json:"axes"`
}

// BregmaARI returns the bregma-origin frame with anterior, right and inferior
// positive axes, measured in millimeters.
func BregmaARI() CoordinateSystem {
	return CoordinateSystem{
		Name:     "BREGMA_ARI",
		Origin:   "Bregma",
		AxisUnit: vocab.SizeMillimeter,
		Axes: []Axis{
			{Name: "AP", Direction: vocab.Anterior},
			{Name: "ML", Direction: vocab.Right},
			{Name: "SI", Direction: vocab.Inferior},
		},
	}
}

// library holds the named coordinate systems known to the module.
var library = map[string]func() CoordinateSystem{
	"BREGMA_ARI": BregmaARI,
}

// Library returns a copy of the named library coordinate system.
func Library(name string) (CoordinateSystem, error) {
	fn, ok := library[name]
	if !ok {
		return CoordinateSystem{}, fmt.Errorf("%w: no library entry %q", ErrInvalidCoordinateSystem, name)
	}
	return fn(), nil
}

// LibraryNames returns the names of all library coordinate systems, sorted.
func LibraryNames() []string {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Dimension returns the number of axes.
func (cs CoordinateSystem) Dimension() int { return len(cs.Axes) }

// Validate checks the coordinate system and returns a copy with its unit and
// axis directions in canonical form.
func (cs CoordinateSystem) Validate() (CoordinateSystem, error) {
	if cs.Name == "" {
		return CoordinateSystem{}, fmt.Errorf("%w: name is required", ErrInvalidCoordinateSystem)
	}
	if cs.Origin == "" {
		return CoordinateSystem{}, fmt.Errorf("%w: %s: origin is required", ErrInvalidCoordinateSystem, cs.Name)
	}
	if len(cs.Axes) == 0 {
		return CoordinateSystem{}, fmt.Errorf("%w: %s: at least one axis is required", ErrInvalidCoordinateSystem, cs.Name)
	}

	out := cs.Clone()
	unit, err := cs.AxisUnit.Canonical()
	if err != nil {
		return CoordinateSystem{}, fmt.Errorf("coordinate system %s axis_unit: %w", cs.Name, err)
	}
	out.AxisUnit = unit

	seen := make(map[string]bool, len(cs.Axes))
	for i, ax := range out.Axes {
		if ax.Name == "" {
			return CoordinateSystem{}, fmt.Errorf("%w: %s: axis %d has no name", ErrInvalidCoordinateSystem, cs.Name, i)
		}
		if seen[ax.Name] {
			return CoordinateSystem{}, fmt.Errorf("%w: %s: duplicate axis %q", ErrInvalidCoordinateSystem, cs.Name, ax.Name)
		}
		seen[ax.Name] = true

		dir, err := ax.Direction.Canonical()
		if err != nil {
			return CoordinateSystem{}, fmt.Errorf("coordinate system %s axis %s: %w", cs.Name, ax.Name, err)
		}
		out.Axes[i].Direction = dir
	}
	return out, nil
}

// Clone returns a deep copy.
func (cs CoordinateSystem) Clone() CoordinateSystem {
	out := cs
	out.Axes = slices.Clone(cs.Axes)
	return out
}

// Equal reports whether both coordinate systems have the same name, origin,
// unit and axes in the same order.
func (cs CoordinateSystem) Equal(other CoordinateSystem) bool {
	return cs.Name == other.Name &&
		cs.Origin == other.Origin &&
		cs.AxisUnit == other.AxisUnit &&
		slices.Equal(cs.Axes, other.Axes)
}

// Resolves returns an error unless t can be interpreted in cs: the transform's
// dimension must equal the number of axes.
func (cs CoordinateSystem) Resolves(t Transform) error {
	return t.Validate(cs.Dimension())
}
