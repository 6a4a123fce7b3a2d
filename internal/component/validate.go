package component

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nerrad567/rigdesc/internal/geometry"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// structValidator evaluates the validate struct tags. It caches struct
// metadata and is safe for concurrent use.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// JSON has no encoding for NaN or the infinities.
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("component: registering finite rule: %v", err))
	}
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(f.Float()) && !math.IsInf(f.Float(), 0)
	default:
		return true
	}
}

// Validate checks c and returns a deep copy in canonical form.
//
// Defaults are applied to unset unit and cooling fields, enumeration values
// are replaced by their canonical spelling, and every rule of the variant is
// checked. The first violation is returned as a *FieldError wrapping
// ErrMissingRequiredField, ErrInvalidValue, ErrInvalidFilterSpec,
// vocab.ErrUnknownEnumerationValue or geometry.ErrDimensionMismatch.
func Validate(c Component) (Component, error) {
	if isNil(c) {
		return nil, fmt.Errorf("%w: component is nil", ErrUnknownKind)
	}
	out := Clone(c)
	applyDefaults(out)
	if err := checkTags(out); err != nil {
		return nil, err
	}
	if err := out.check(); err != nil {
		return nil, err
	}
	return out, nil
}

func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func applyDefaults(c Component) {
	switch v := c.(type) {
	case *Laser:
		setDefault(&v.WavelengthUnit, vocab.SizeNanometer)
	case *LightEmittingDiode:
		setDefault(&v.WavelengthUnit, vocab.SizeNanometer)
	case *Camera:
		setDefault(&v.DetectorType, vocab.DetectorCamera)
		setDefault(&v.Cooling, vocab.CoolingNone)
	case *Detector:
		setDefault(&v.Cooling, vocab.CoolingNone)
	case *Filter:
		setDefault(&v.WavelengthUnit, vocab.SizeNanometer)
	case *Disc:
		setDefault(&v.RadiusUnit, vocab.SizeCentimeter)
	case *Monitor:
		setDefault(&v.SizeUnit, vocab.SizePixel)
		setDefault(&v.ViewingDistanceUnit, vocab.SizeCentimeter)
	case *Microscope, *Objective, *CameraAssembly, *Lens, *DAQDevice, *PockelsCell, *Computer:
		// No defaulted fields.
	default:
		panic(fmt.Sprintf("component: applyDefaults: unhandled variant %T", c))
	}
}

func setDefault[T ~string](field *T, def T) {
	if *field == "" {
		*field = def
	}
}

// checkTags runs the struct tag rules and converts the first failure.
func checkTags(c Component) error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fieldError(c, "", fmt.Errorf("%w: %w", ErrInvalidValue, err))
	}
	fe := verrs[0]
	path := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required", "required_with":
		return fieldError(c, path, ErrMissingRequiredField)
	case "finite":
		return fieldError(c, path, fmt.Errorf("%w: %v is not a finite number", ErrInvalidValue, fe.Value()))
	case "excluded_without":
		return fieldError(c, path, fmt.Errorf("%w: unit set without a value", ErrInvalidValue))
	default:
		return fieldError(c, path, fmt.Errorf("%w: %v violates %s=%s", ErrInvalidValue, fe.Value(), fe.Tag(), fe.Param()))
	}
}

// fieldPath turns a validator namespace ("Laser.Device.name") into a JSON
// path relative to the component ("name").
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	out := parts[:0]
	for _, p := range parts {
		if p != "Device" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ".")
}

// canonical replaces *v with its canonical registry spelling.
func canonical[T interface {
	~string
	Canonical() (T, error)
}](c Component, field string, v *T) error {
	got, err := (*v).Canonical()
	if err != nil {
		return fieldError(c, field, err)
	}
	*v = got
	return nil
}

func canonicalOptional[T interface {
	~string
	Canonical() (T, error)
}](c Component, field string, v *T) error {
	if v == nil {
		return nil
	}
	return canonical(c, field, v)
}

func canonicalList[T interface {
	~string
	Canonical() (T, error)
}](c Component, field string, values []T) error {
	for i := range values {
		if err := canonical(c, fmt.Sprintf("%s[%d]", field, i), &values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) checkDevice(c Component) error {
	return canonical(c, "manufacturer", &d.Manufacturer)
}

func (m *Microscope) check() error { return m.checkDevice(m) }

func (o *Objective) check() error {
	if err := o.checkDevice(o); err != nil {
		return err
	}
	return canonical(o, "immersion", &o.Immersion)
}

func (l *Laser) check() error {
	if err := l.checkDevice(l); err != nil {
		return err
	}
	if err := canonical(l, "wavelength_unit", &l.WavelengthUnit); err != nil {
		return err
	}
	return canonicalOptional(l, "power_unit", l.PowerUnit)
}

func (l *LightEmittingDiode) check() error {
	if err := l.checkDevice(l); err != nil {
		return err
	}
	return canonical(l, "wavelength_unit", &l.WavelengthUnit)
}

func (c *Camera) check() error {
	if err := c.checkDevice(c); err != nil {
		return err
	}
	if err := canonical(c, "detector_type", &c.DetectorType); err != nil {
		return err
	}
	if err := canonical(c, "data_interface", &c.DataInterface); err != nil {
		return err
	}
	if err := canonical(c, "cooling", &c.Cooling); err != nil {
		return err
	}
	if err := canonicalOptional(c, "frame_rate_unit", c.FrameRateUnit); err != nil {
		return err
	}
	return canonicalOptional(c, "chroma", c.Chroma)
}

func (d *Detector) check() error {
	if err := d.checkDevice(d); err != nil {
		return err
	}
	if err := canonical(d, "detector_type", &d.DetectorType); err != nil {
		return err
	}
	if err := canonical(d, "data_interface", &d.DataInterface); err != nil {
		return err
	}
	return canonical(d, "cooling", &d.Cooling)
}

// check validates the assembly and each owned sub-component, replacing the
// sub-components with their canonical copies.
func (a *CameraAssembly) check() error {
	if err := canonical(a, "target", &a.Target); err != nil {
		return err
	}
	if err := canonicalList(a, "relative_position", a.RelativePosition); err != nil {
		return err
	}
	if a.Camera == nil {
		return fieldError(a, "camera", ErrMissingRequiredField)
	}
	if a.Lens == nil {
		return fieldError(a, "lens", ErrMissingRequiredField)
	}

	camera, err := validateOwned(a, "camera", a.Camera)
	if err != nil {
		return err
	}
	a.Camera = camera.(*Camera)

	lens, err := validateOwned(a, "lens", a.Lens)
	if err != nil {
		return err
	}
	a.Lens = lens.(*Lens)

	if a.Filter != nil {
		filter, err := validateOwned(a, "filter", a.Filter)
		if err != nil {
			return err
		}
		a.Filter = filter.(*Filter)
	}
	if a.LED != nil {
		led, err := validateOwned(a, "led", a.LED)
		if err != nil {
			return err
		}
		a.LED = led.(*LightEmittingDiode)
	}
	return nil
}

func validateOwned(owner *CameraAssembly, field string, c Component) (Component, error) {
	out, err := Validate(c)
	if err != nil {
		return nil, fmt.Errorf("%s %q %s: %w", owner.Kind(), owner.Name, field, err)
	}
	return out, nil
}

func (l *Lens) check() error {
	if err := l.checkDevice(l); err != nil {
		return err
	}
	return canonicalOptional(l, "focal_length_unit", l.FocalLengthUnit)
}

// check applies the filter type rules: band pass and notch filters need a
// center wavelength and no cut-off, short pass and long pass filters need a
// cut-off and no center wavelength.
func (f *Filter) check() error {
	if err := f.checkDevice(f); err != nil {
		return err
	}
	if err := canonical(f, "filter_type", &f.FilterType); err != nil {
		return err
	}
	if err := canonical(f, "wavelength_unit", &f.WavelengthUnit); err != nil {
		return err
	}

	switch f.FilterType {
	case vocab.FilterBandpass, vocab.FilterNotch:
		if f.CenterWavelength == nil {
			return fieldError(f, "center_wavelength",
				fmt.Errorf("%w: %s filter requires center_wavelength", ErrInvalidFilterSpec, f.FilterType))
		}
		if f.CutOffWavelength != nil {
			return fieldError(f, "cut_off_wavelength",
				fmt.Errorf("%w: %s filter must not set cut_off_wavelength", ErrInvalidFilterSpec, f.FilterType))
		}
	case vocab.FilterShortpass, vocab.FilterLongpass:
		if f.CutOffWavelength == nil {
			return fieldError(f, "cut_off_wavelength",
				fmt.Errorf("%w: %s filter requires cut_off_wavelength", ErrInvalidFilterSpec, f.FilterType))
		}
		if f.CenterWavelength != nil {
			return fieldError(f, "center_wavelength",
				fmt.Errorf("%w: %s filter must not set center_wavelength", ErrInvalidFilterSpec, f.FilterType))
		}
	}
	return nil
}

func (d *Disc) check() error {
	if err := d.checkDevice(d); err != nil {
		return err
	}
	return canonical(d, "radius_unit", &d.RadiusUnit)
}

// check also resolves the transform: a monitor with a transform must name
// the coordinate system it maps into, and the transform's dimension must
// equal that system's axis count.
func (m *Monitor) check() error {
	if err := m.checkDevice(m); err != nil {
		return err
	}
	if err := canonical(m, "size_unit", &m.SizeUnit); err != nil {
		return err
	}
	if err := canonical(m, "viewing_distance_unit", &m.ViewingDistanceUnit); err != nil {
		return err
	}
	if err := canonicalList(m, "relative_position", m.RelativePosition); err != nil {
		return err
	}

	if m.CoordinateSystem != nil {
		cs, err := m.CoordinateSystem.Validate()
		if err != nil {
			return fieldError(m, "coordinate_system", err)
		}
		m.CoordinateSystem = &cs
	}
	if m.Transform == nil {
		return nil
	}
	if m.CoordinateSystem == nil {
		return fieldError(m, "coordinate_system", ErrMissingRequiredField)
	}
	if err := m.CoordinateSystem.Resolves(m.Transform); err != nil {
		return fieldError(m, "transform", err)
	}
	return nil
}

func (d *DAQDevice) check() error {
	if err := d.checkDevice(d); err != nil {
		return err
	}
	return canonical(d, "data_interface", &d.DataInterface)
}

func (p *PockelsCell) check() error {
	if err := p.checkDevice(p); err != nil {
		return err
	}
	if err := canonicalOptional(p, "polarizer_manufacturer", p.PolarizerManufacturer); err != nil {
		return err
	}
	return canonicalOptional(p, "beam_modulation_unit", p.BeamModulationUnit)
}

func (c *Computer) check() error { return c.checkDevice(c) }

// Positioned returns the coordinate system and transform of a component
// that places itself in space, or ok=false for components that do not.
func Positioned(c Component) (cs *geometry.CoordinateSystem, t geometry.Transform, ok bool) {
	m, isMonitor := c.(*Monitor)
	if !isMonitor || m.Transform == nil {
		return nil, nil, false
	}
	return m.CoordinateSystem, m.Transform, true
}
