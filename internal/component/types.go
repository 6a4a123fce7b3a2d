package component

import (
	"github.com/nerrad567/rigdesc/internal/geometry"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// Kind names a component variant. It is the value written to object_type.
type Kind = vocab.ComponentKind

// AllKinds returns every component variant kind.
func AllKinds() []Kind { return vocab.AllComponentKinds() }

// Component is one hardware device or composite sub-assembly.
//
// Only the pointer types declared in this package implement Component.
type Component interface {
	// Kind returns the variant discriminator.
	Kind() Kind

	// ComponentName returns the name, unique within an instrument.
	ComponentName() string

	check() error
}

// Device holds the attributes common to manufactured components.
type Device struct {
	Name         string             `json:"name" validate:"required"`
	Manufacturer vocab.Organization `json:"manufacturer" validate:"required"`
	Model        *string            `json:"model"`
	SerialNumber *string            `json:"serial_number"`
	Notes        *string            `json:"notes"`
}

// Software identifies firmware or a program by name and version.
type Software struct {
	Name    string  `json:"name" validate:"required"`
	Version *string `json:"version"`
}

// Microscope is the microscope body.
type Microscope struct {
	Device
}

// Objective is a microscope objective.
type Objective struct {
	Device
	NumericalAperture float64               `json:"numerical_aperture" validate:"required,finite,gt=0"`
	Magnification     float64               `json:"magnification" validate:"required,finite,gt=0"`
	Immersion         vocab.ImmersionMedium `json:"immersion" validate:"required"`
}

// Laser is a laser light source.
type Laser struct {
	Device
	Wavelength     int              `json:"wavelength" validate:"required,gt=0"`
	WavelengthUnit vocab.SizeUnit   `json:"wavelength_unit"`
	MaximumPower   *float64         `json:"maximum_power" validate:"omitnil,finite,gt=0"`
	PowerUnit      *vocab.PowerUnit `json:"power_unit" validate:"required_with=MaximumPower,excluded_without=MaximumPower"`
}

// LightEmittingDiode is an LED light source.
type LightEmittingDiode struct {
	Device
	Wavelength     int            `json:"wavelength" validate:"required,gt=0"`
	WavelengthUnit vocab.SizeUnit `json:"wavelength_unit"`
	Bandwidth      *int           `json:"bandwidth" validate:"omitnil,gt=0"`
}

// Camera is an imaging detector.
type Camera struct {
	Device
	DetectorType  vocab.DetectorType   `json:"detector_type" validate:"required"`
	DataInterface vocab.DataInterface  `json:"data_interface" validate:"required"`
	Cooling       vocab.Cooling        `json:"cooling"`
	FrameRate     *float64             `json:"frame_rate" validate:"omitnil,finite,gt=0"`
	FrameRateUnit *vocab.FrequencyUnit `json:"frame_rate_unit" validate:"required_with=FrameRate,excluded_without=FrameRate"`
	Chroma        *vocab.Chroma        `json:"chroma"`
	SensorWidth   *int                 `json:"sensor_width" validate:"omitnil,gt=0"`
	SensorHeight  *int                 `json:"sensor_height" validate:"omitnil,gt=0"`
}

// Detector is a non-imaging light detector such as a photomultiplier tube.
type Detector struct {
	Device
	DetectorType  vocab.DetectorType  `json:"detector_type" validate:"required"`
	DataInterface vocab.DataInterface `json:"data_interface" validate:"required"`
	Cooling       vocab.Cooling       `json:"cooling"`
}

// CameraAssembly is a camera with its lens and optional filter and LED,
// pointed at a target. The assembly exclusively owns its sub-components.
type CameraAssembly struct {
	Name             string                     `json:"name" validate:"required"`
	Target           vocab.CameraTarget         `json:"target" validate:"required"`
	RelativePosition []vocab.AnatomicalRelative `json:"relative_position"`
	Camera           *Camera                    `json:"camera" validate:"-"`
	Lens             *Lens                      `json:"lens" validate:"-"`
	Filter           *Filter                    `json:"filter" validate:"-"`
	LED              *LightEmittingDiode        `json:"led" validate:"-"`
}

// Lens is a camera lens.
type Lens struct {
	Device
	FocalLength     *float64        `json:"focal_length" validate:"omitnil,finite,gt=0"`
	FocalLengthUnit *vocab.SizeUnit `json:"focal_length_unit" validate:"required_with=FocalLength,excluded_without=FocalLength"`
}

// Filter is an optical filter.
//
// Band pass and notch filters are described by a center wavelength; short
// pass and long pass filters by a cut-off wavelength.
type Filter struct {
	Device
	FilterType       vocab.FilterType `json:"filter_type" validate:"required"`
	CenterWavelength *int             `json:"center_wavelength" validate:"omitnil,gt=0"`
	CutOffWavelength *int             `json:"cut_off_wavelength" validate:"omitnil,gt=0"`
	WavelengthUnit   vocab.SizeUnit   `json:"wavelength_unit"`
}

// Disc is a running disc with its rotary encoder.
type Disc struct {
	Device
	Radius          float64        `json:"radius" validate:"required,finite,gt=0"`
	RadiusUnit      vocab.SizeUnit `json:"radius_unit"`
	SurfaceMaterial *string        `json:"surface_material"`
	Output          *string        `json:"output"`
	Encoder         *string        `json:"encoder"`
	Decoder         *string        `json:"decoder"`
	EncoderFirmware *Software      `json:"encoder_firmware"`
}

// Monitor is a visual stimulus display. When Transform is set it places the
// screen in CoordinateSystem.
type Monitor struct {
	Device
	RefreshRate         int                        `json:"refresh_rate" validate:"required,gt=0"`
	Width               int                        `json:"width" validate:"required,gt=0"`
	Height              int                        `json:"height" validate:"required,gt=0"`
	SizeUnit            vocab.SizeUnit             `json:"size_unit"`
	ViewingDistance     float64                    `json:"viewing_distance" validate:"required,finite,gt=0"`
	ViewingDistanceUnit vocab.SizeUnit             `json:"viewing_distance_unit"`
	RelativePosition    []vocab.AnatomicalRelative `json:"relative_position"`
	Contrast            *int                       `json:"contrast" validate:"omitnil,min=0,max=100"`
	Brightness          *int                       `json:"brightness" validate:"omitnil,min=0,max=100"`
	CoordinateSystem    *geometry.CoordinateSystem `json:"coordinate_system" validate:"-"`
	Transform           geometry.Transform         `json:"transform" validate:"-"`
}

// DAQDevice is a data acquisition board.
type DAQDevice struct {
	Device
	DataInterface   vocab.DataInterface `json:"data_interface" validate:"required"`
	ComputerName    *string             `json:"computer_name"`
	HardwareVersion *string             `json:"hardware_version"`
}

// PockelsCell is an electro-optic modulator controlling laser power.
type PockelsCell struct {
	Device
	PolarizerManufacturer *vocab.Organization `json:"polarizer_manufacturer"`
	PolarizerModel        *string             `json:"polarizer_model"`
	BeamModulation        *float64            `json:"beam_modulation" validate:"omitnil,finite,gt=0"`
	BeamModulationUnit    *vocab.PowerUnit    `json:"beam_modulation_unit" validate:"required_with=BeamModulation,excluded_without=BeamModulation"`
}

// Computer is a workstation attached to the instrument.
type Computer struct {
	Device
	OperatingSystem *string `json:"operating_system"`
}

// Kind implementations.

func (*Microscope) Kind() Kind         { return vocab.KindMicroscope }
func (*Objective) Kind() Kind          { return vocab.KindObjective }
func (*Laser) Kind() Kind              { return vocab.KindLaser }
func (*LightEmittingDiode) Kind() Kind { return vocab.KindLightEmittingDiode }
func (*Camera) Kind() Kind             { return vocab.KindCamera }
func (*Detector) Kind() Kind           { return vocab.KindDetector }
func (*CameraAssembly) Kind() Kind     { return vocab.KindCameraAssembly }
func (*Lens) Kind() Kind               { return vocab.KindLens }
func (*Filter) Kind() Kind             { return vocab.KindFilter }
func (*Disc) Kind() Kind               { return vocab.KindDisc }
func (*Monitor) Kind() Kind            { return vocab.KindMonitor }
func (*DAQDevice) Kind() Kind          { return vocab.KindDAQDevice }
func (*PockelsCell) Kind() Kind        { return vocab.KindPockelsCell }
func (*Computer) Kind() Kind           { return vocab.KindComputer }

// ComponentName returns the device name.
func (d *Device) ComponentName() string { return d.Name }

// ComponentName returns the assembly name.
func (a *CameraAssembly) ComponentName() string { return a.Name }
