package component

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/nerrad567/rigdesc/internal/strict"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// New returns an empty value of the variant named by kind. Aliases accepted
// by the registry are resolved first.
func New(kind Kind) (Component, error) {
	k, err := kind.Canonical()
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	switch k {
	case vocab.KindMicroscope:
		return &Microscope{}, nil
	case vocab.KindObjective:
		return &Objective{}, nil
	case vocab.KindLaser:
		return &Laser{}, nil
	case vocab.KindLightEmittingDiode:
		return &LightEmittingDiode{}, nil
	case vocab.KindCamera:
		return &Camera{}, nil
	case vocab.KindDetector:
		return &Detector{}, nil
	case vocab.KindCameraAssembly:
		return &CameraAssembly{}, nil
	case vocab.KindLens:
		return &Lens{}, nil
	case vocab.KindFilter:
		return &Filter{}, nil
	case vocab.KindDisc:
		return &Disc{}, nil
	case vocab.KindMonitor:
		return &Monitor{}, nil
	case vocab.KindDAQDevice:
		return &DAQDevice{}, nil
	case vocab.KindPockelsCell:
		return &PockelsCell{}, nil
	case vocab.KindComputer:
		return &Computer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q has no variant", ErrUnknownKind, k)
	}
}

// Decode decodes one component, choosing the variant from its object_type.
func Decode(data []byte) (Component, error) {
	disc, err := strict.Discriminator(data)
	if err != nil {
		return nil, err
	}
	if disc == "" {
		return nil, fmt.Errorf("%w: object_type is missing", ErrUnknownKind)
	}
	c, err := New(Kind(disc))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List is an ordered component sequence that decodes each element by its
// object_type.
type List []Component

// UnmarshalJSON decodes the array, failing on the first element that cannot
// be decoded. Unknown discriminators are never skipped.
func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}
	out := make(List, 0, len(raw))
	for i, r := range raw {
		c, err := Decode(r)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		out = append(out, c)
	}
	*l = out
	return nil
}

// Clone returns a deep copy of c. Clone(nil) is nil.
func Clone(c Component) Component {
	if isNil(c) {
		return nil
	}
	switch v := c.(type) {
	case *Microscope:
		out := *v
		out.Device = v.Device.clone()
		return &out
	case *Objective:
		out := *v
		out.Device = v.Device.clone()
		return &out
	case *Laser:
		out := *v
		out.Device = v.Device.clone()
		out.MaximumPower = clonePtr(v.MaximumPower)
		out.PowerUnit = clonePtr(v.PowerUnit)
		return &out
	case *LightEmittingDiode:
		return v.clone()
	case *Camera:
		return v.clone()
	case *Detector:
		out := *v
		out.Device = v.Device.clone()
		return &out
	case *CameraAssembly:
		out := *v
		out.RelativePosition = slices.Clone(v.RelativePosition)
		if v.Camera != nil {
			out.Camera = v.Camera.clone()
		}
		if v.Lens != nil {
			out.Lens = v.Lens.clone()
		}
		if v.Filter != nil {
			out.Filter = v.Filter.clone()
		}
		if v.LED != nil {
			out.LED = v.LED.clone()
		}
		return &out
	case *Lens:
		return v.clone()
	case *Filter:
		return v.clone()
	case *Disc:
		out := *v
		out.Device = v.Device.clone()
		out.SurfaceMaterial = clonePtr(v.SurfaceMaterial)
		out.Output = clonePtr(v.Output)
		out.Encoder = clonePtr(v.Encoder)
		out.Decoder = clonePtr(v.Decoder)
		if v.EncoderFirmware != nil {
			fw := *v.EncoderFirmware
			fw.Version = clonePtr(v.EncoderFirmware.Version)
			out.EncoderFirmware = &fw
		}
		return &out
	case *Monitor:
		out := *v
		out.Device = v.Device.clone()
		out.RelativePosition = slices.Clone(v.RelativePosition)
		out.Contrast = clonePtr(v.Contrast)
		out.Brightness = clonePtr(v.Brightness)
		if v.CoordinateSystem != nil {
			cs := v.CoordinateSystem.Clone()
			out.CoordinateSystem = &cs
		}
		out.Transform = v.Transform.Clone()
		return &out
	case *DAQDevice:
		out := *v
		out.Device = v.Device.clone()
		out.ComputerName = clonePtr(v.ComputerName)
		out.HardwareVersion = clonePtr(v.HardwareVersion)
		return &out
	case *PockelsCell:
		out := *v
		out.Device = v.Device.clone()
		out.PolarizerManufacturer = clonePtr(v.PolarizerManufacturer)
		out.PolarizerModel = clonePtr(v.PolarizerModel)
		out.BeamModulation = clonePtr(v.BeamModulation)
		out.BeamModulationUnit = clonePtr(v.BeamModulationUnit)
		return &out
	case *Computer:
		out := *v
		out.Device = v.Device.clone()
		out.OperatingSystem = clonePtr(v.OperatingSystem)
		return &out
	default:
		panic(fmt.Sprintf("component: Clone: unhandled variant %T", c))
	}
}

func (d Device) clone() Device {
	d.SerialNumber = clonePtr(d.SerialNumber)
	d.Model = clonePtr(d.Model)
	d.Notes = clonePtr(d.Notes)
	return d
}

func (l *LightEmittingDiode) clone() *LightEmittingDiode {
	out := *l
	out.Device = l.Device.clone()
	out.Bandwidth = clonePtr(l.Bandwidth)
	return &out
}

func (c *Camera) clone() *Camera {
	out := *c
	out.Device = c.Device.clone()
	out.FrameRate = clonePtr(c.FrameRate)
	out.FrameRateUnit = clonePtr(c.FrameRateUnit)
	out.Chroma = clonePtr(c.Chroma)
	out.SensorWidth = clonePtr(c.SensorWidth)
	out.SensorHeight = clonePtr(c.SensorHeight)
	return &out
}

func (l *Lens) clone() *Lens {
	out := *l
	out.Device = l.Device.clone()
	out.FocalLength = clonePtr(l.FocalLength)
	out.FocalLengthUnit = clonePtr(l.FocalLengthUnit)
	return &out
}

func (f *Filter) clone() *Filter {
	out := *f
	out.Device = f.Device.clone()
	out.CenterWavelength = clonePtr(f.CenterWavelength)
	out.CutOffWavelength = clonePtr(f.CutOffWavelength)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Owned returns the sub-components c owns, in document order. Components
// that own nothing return nil.
func Owned(c Component) []Component {
	switch v := c.(type) {
	case *CameraAssembly:
		var out []Component
		if v.Camera != nil {
			out = append(out, v.Camera)
		}
		if v.Lens != nil {
			out = append(out, v.Lens)
		}
		if v.Filter != nil {
			out = append(out, v.Filter)
		}
		if v.LED != nil {
			out = append(out, v.LED)
		}
		return out
	case *Microscope, *Objective, *Laser, *LightEmittingDiode, *Camera, *Detector,
		*Lens, *Filter, *Disc, *Monitor, *DAQDevice, *PockelsCell, *Computer:
		return nil
	default:
		panic(fmt.Sprintf("component: Owned: unhandled variant %T", c))
	}
}

// Walk calls fn for c and then for each component it owns, depth first.
// Walking stops at the first error fn returns.
func Walk(c Component, fn func(Component) error) error {
	if isNil(c) {
		return nil
	}
	if err := fn(c); err != nil {
		return err
	}
	for _, sub := range Owned(c) {
		if err := Walk(sub, fn); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether a and b are the same variant with equal field values,
// including owned sub-components and transform operation order.
func Equal(a, b Component) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) == isNil(b)
	}
	return reflect.DeepEqual(a, b)
}
