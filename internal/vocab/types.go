package vocab

// Category names a closed vocabulary.
type Category string

// Category constants.
const (
	CategoryOrganization       Category = "organization"
	CategoryModality           Category = "modality"
	CategorySizeUnit           Category = "size_unit"
	CategoryFrequencyUnit      Category = "frequency_unit"
	CategoryPowerUnit          Category = "power_unit"
	CategoryTemperatureUnit    Category = "temperature_unit"
	CategoryAnatomicalRelative Category = "anatomical_relative"
	CategoryCameraTarget       Category = "camera_target"
	CategoryDataInterface      Category = "data_interface"
	CategoryFilterType         Category = "filter_type"
	CategoryCooling            Category = "cooling"
	CategoryChroma             Category = "chroma"
	CategoryDetectorType       Category = "detector_type"
	CategoryImmersionMedium    Category = "immersion_medium"
	CategoryComponentKind      Category = "component_kind"
)

// Organization identifies a manufacturer or institution.
type Organization string

// Organization constants.
const (
	OrgAIND                Organization = "Allen Institute for Neural Dynamics"
	OrgAllenInstitute      Organization = "Allen Institute"
	OrgAllied              Organization = "Allied"
	OrgAmsOsram            Organization = "ams OSRAM"
	OrgASUS                Organization = "ASUS"
	OrgBasler              Organization = "Basler"
	OrgChroma              Organization = "Chroma"
	OrgCoherentScientific  Organization = "Coherent Scientific"
	OrgConoptics           Organization = "Conoptics"
	OrgCUIDevices          Organization = "CUI Devices"
	OrgEdmundOptics        Organization = "Edmund Optics"
	OrgHamamatsu           Organization = "Hamamatsu"
	OrgLeica               Organization = "Leica"
	OrgMightex             Organization = "Mightex"
	OrgNationalInstruments Organization = "National Instruments"
	OrgNewport             Organization = "Newport Corporation"
	OrgNikon               Organization = "Nikon"
	OrgOlympus             Organization = "Olympus"
	OrgSemrock             Organization = "Semrock"
	OrgSpectraPhysics      Organization = "Spectra-Physics"
	OrgTeledyneFLIR        Organization = "Teledyne FLIR"
	OrgThorlabs            Organization = "Thorlabs"
	OrgZeiss               Organization = "Carl Zeiss"
	OrgOther               Organization = "Other"
)

// AllOrganizations returns all valid organization values.
func AllOrganizations() []Organization {
	return []Organization{
		OrgAIND, OrgAllenInstitute, OrgAllied, OrgAmsOsram, OrgASUS, OrgBasler,
		OrgChroma, OrgCoherentScientific, OrgConoptics, OrgCUIDevices,
		OrgEdmundOptics, OrgHamamatsu, OrgLeica, OrgMightex,
		OrgNationalInstruments, OrgNewport, OrgNikon, OrgOlympus, OrgSemrock,
		OrgSpectraPhysics, OrgTeledyneFLIR, OrgThorlabs, OrgZeiss, OrgOther,
	}
}

// Modality classifies the kind of data an instrument acquires.
type Modality string

// Modality constants.
const (
	ModalityBehavior       Modality = "behavior"
	ModalityBehaviorVideos Modality = "behavior-videos"
	ModalityConfocal       Modality = "confocal"
	ModalityECEPHYS        Modality = "ecephys"
	ModalityFIB            Modality = "fib"
	ModalityICEPHYS        Modality = "icephys"
	ModalityPOPHYS         Modality = "pophys"
	ModalitySLAP           Modality = "slap"
	ModalitySPIM           Modality = "SPIM"
)

// AllModalities returns all valid modality values in registry order.
// Instrument modality sets are serialized in this order.
func AllModalities() []Modality {
	return []Modality{
		ModalityBehavior, ModalityBehaviorVideos, ModalityConfocal,
		ModalityECEPHYS, ModalityFIB, ModalityICEPHYS, ModalityPOPHYS,
		ModalitySLAP, ModalitySPIM,
	}
}

// SizeUnit is a unit of length.
type SizeUnit string

// SizeUnit constants.
const (
	SizeMeter      SizeUnit = "meter"
	SizeCentimeter SizeUnit = "centimeter"
	SizeMillimeter SizeUnit = "millimeter"
	SizeMicrometer SizeUnit = "micrometer"
	SizeNanometer  SizeUnit = "nanometer"
	SizeInch       SizeUnit = "inch"
	SizePixel      SizeUnit = "pixel"
)

// AllSizeUnits returns all valid size unit values.
func AllSizeUnits() []SizeUnit {
	return []SizeUnit{
		SizeMeter, SizeCentimeter, SizeMillimeter, SizeMicrometer,
		SizeNanometer, SizeInch, SizePixel,
	}
}

// FrequencyUnit is a unit of frequency.
type FrequencyUnit string

// FrequencyUnit constants.
const (
	FrequencyHertz     FrequencyUnit = "hertz"
	FrequencyKilohertz FrequencyUnit = "kilohertz"
	FrequencyMegahertz FrequencyUnit = "megahertz"
)

// AllFrequencyUnits returns all valid frequency unit values.
func AllFrequencyUnits() []FrequencyUnit {
	return []FrequencyUnit{FrequencyHertz, FrequencyKilohertz, FrequencyMegahertz}
}

// PowerUnit is a unit of optical or electrical power.
type PowerUnit string

// PowerUnit constants.
const (
	PowerWatt      PowerUnit = "watt"
	PowerMilliwatt PowerUnit = "milliwatt"
	PowerMicrowatt PowerUnit = "microwatt"
	PowerPercent   PowerUnit = "percent"
)

// AllPowerUnits returns all valid power unit values.
func AllPowerUnits() []PowerUnit {
	return []PowerUnit{PowerWatt, PowerMilliwatt, PowerMicrowatt, PowerPercent}
}

// TemperatureUnit is a unit of temperature.
type TemperatureUnit string

// TemperatureUnit constants.
const (
	TemperatureCelsius TemperatureUnit = "Celsius"
	TemperatureKelvin  TemperatureUnit = "Kelvin"
)

// AllTemperatureUnits returns all valid temperature unit values.
func AllTemperatureUnits() []TemperatureUnit {
	return []TemperatureUnit{TemperatureCelsius, TemperatureKelvin}
}

// AnatomicalRelative is a direction relative to the subject.
type AnatomicalRelative string

// AnatomicalRelative constants.
const (
	Anterior  AnatomicalRelative = "Anterior"
	Posterior AnatomicalRelative = "Posterior"
	Superior  AnatomicalRelative = "Superior"
	Inferior  AnatomicalRelative = "Inferior"
	Left      AnatomicalRelative = "Left"
	Right     AnatomicalRelative = "Right"
	Medial    AnatomicalRelative = "Medial"
	Lateral   AnatomicalRelative = "Lateral"
	Origin    AnatomicalRelative = "Origin"
)

// AllAnatomicalRelatives returns all valid anatomical direction values.
func AllAnatomicalRelatives() []AnatomicalRelative {
	return []AnatomicalRelative{
		Anterior, Posterior, Superior, Inferior, Left, Right, Medial, Lateral, Origin,
	}
}

// CameraTarget is what a camera assembly is pointed at.
type CameraTarget string

// CameraTarget constants.
const (
	TargetBody   CameraTarget = "Body"
	TargetBrain  CameraTarget = "Brain"
	TargetEye    CameraTarget = "Eye"
	TargetFace   CameraTarget = "Face"
	TargetTongue CameraTarget = "Tongue"
	TargetOther  CameraTarget = "Other"
)

// AllCameraTargets returns all valid camera target values.
func AllCameraTargets() []CameraTarget {
	return []CameraTarget{TargetBody, TargetBrain, TargetEye, TargetFace, TargetTongue, TargetOther}
}

// DataInterface is the physical interface a device uses to move data.
type DataInterface string

// DataInterface constants.
const (
	InterfaceCameraLink DataInterface = "Camera Link"
	InterfaceCoax       DataInterface = "Coax"
	InterfaceCoaXPress  DataInterface = "CoaXPress"
	InterfaceEthernet   DataInterface = "Ethernet"
	InterfacePCIe       DataInterface = "PCIe"
	InterfacePXI        DataInterface = "PXI"
	InterfaceUSB        DataInterface = "USB"
	InterfaceOther      DataInterface = "Other"
)

// AllDataInterfaces returns all valid data interface values.
func AllDataInterfaces() []DataInterface {
	return []DataInterface{
		InterfaceCameraLink, InterfaceCoax, InterfaceCoaXPress, InterfaceEthernet,
		InterfacePCIe, InterfacePXI, InterfaceUSB, InterfaceOther,
	}
}

// FilterType classifies an optical filter.
type FilterType string

// FilterType constants.
const (
	FilterBandpass       FilterType = "Band pass"
	FilterDichroic       FilterType = "Dichroic"
	FilterLongpass       FilterType = "Long pass"
	FilterMultiband      FilterType = "Multiband"
	FilterNeutralDensity FilterType = "Neutral density"
	FilterNotch          FilterType = "Notch"
	FilterShortpass      FilterType = "Short pass"
)

// AllFilterTypes returns all valid filter type values.
func AllFilterTypes() []FilterType {
	return []FilterType{
		FilterBandpass, FilterDichroic, FilterLongpass, FilterMultiband,
		FilterNeutralDensity, FilterNotch, FilterShortpass,
	}
}

// Cooling describes how a detector is cooled.
type Cooling string

// Cooling constants.
const (
	CoolingAir   Cooling = "Air"
	CoolingNone  Cooling = "No cooling"
	CoolingWater Cooling = "Water"
)

// AllCoolings returns all valid cooling values.
func AllCoolings() []Cooling {
	return []Cooling{CoolingAir, CoolingNone, CoolingWater}
}

// Chroma describes a camera sensor's color capability.
type Chroma string

// Chroma constants.
const (
	ChromaColor      Chroma = "Color"
	ChromaDualColor  Chroma = "Dual Color"
	ChromaMonochrome Chroma = "Monochrome"
)

// AllChromas returns all valid chroma values.
func AllChromas() []Chroma {
	return []Chroma{ChromaColor, ChromaDualColor, ChromaMonochrome}
}

// DetectorType classifies a light detector.
type DetectorType string

// DetectorType constants.
const (
	DetectorCamera DetectorType = "Camera"
	DetectorPMT    DetectorType = "Photomultiplier Tube"
	DetectorOther  DetectorType = "Other"
)

// AllDetectorTypes returns all valid detector type values.
func AllDetectorTypes() []DetectorType {
	return []DetectorType{DetectorCamera, DetectorPMT, DetectorOther}
}

// ImmersionMedium is the medium an objective is designed to image through.
type ImmersionMedium string

// ImmersionMedium constants.
const (
	ImmersionAir      ImmersionMedium = "air"
	ImmersionGlycerol ImmersionMedium = "glycerol"
	ImmersionMulti    ImmersionMedium = "multi"
	ImmersionOil      ImmersionMedium = "oil"
	ImmersionWater    ImmersionMedium = "water"
	ImmersionOther    ImmersionMedium = "other"
)

// AllImmersionMedia returns all valid immersion medium values.
func AllImmersionMedia() []ImmersionMedium {
	return []ImmersionMedium{
		ImmersionAir, ImmersionGlycerol, ImmersionMulti, ImmersionOil,
		ImmersionWater, ImmersionOther,
	}
}

// ComponentKind is the discriminator naming a component variant.
type ComponentKind string

// ComponentKind constants.
const (
	KindCameraAssembly     ComponentKind = "Camera assembly"
	KindCamera             ComponentKind = "Camera"
	KindComputer           ComponentKind = "Computer"
	KindDAQDevice          ComponentKind = "DAQ device"
	KindDetector           ComponentKind = "Detector"
	KindDisc               ComponentKind = "Disc"
	KindFilter             ComponentKind = "Filter"
	KindLaser              ComponentKind = "Laser"
	KindLens               ComponentKind = "Lens"
	KindLightEmittingDiode ComponentKind = "Light emitting diode"
	KindMicroscope         ComponentKind = "Microscope"
	KindMonitor            ComponentKind = "Monitor"
	KindObjective          ComponentKind = "Objective"
	KindPockelsCell        ComponentKind = "Pockels cell"
)

// AllComponentKinds returns all valid component kind values.
func AllComponentKinds() []ComponentKind {
	return []ComponentKind{
		KindCameraAssembly, KindCamera, KindComputer, KindDAQDevice,
		KindDetector, KindDisc, KindFilter, KindLaser, KindLens,
		KindLightEmittingDiode, KindMicroscope, KindMonitor, KindObjective,
		KindPockelsCell,
	}
}
