package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// table maps every accepted spelling of a category member to its canonical value.
type table struct {
	canonical map[string]string
	members   []string
}

// tables is built once in init() and never written afterwards.
var tables map[Category]*table

func init() {
	tables = make(map[Category]*table)

	register(CategoryOrganization, members(AllOrganizations()), map[string]string{
		"AIND":      string(OrgAIND),
		"AI":        string(OrgAllenInstitute),
		"ALLIED":    string(OrgAllied),
		"AMS_OSRAM": string(OrgAmsOsram),
		"OSRAM":     string(OrgAmsOsram),
		"CUI":       string(OrgCUIDevices),
		"EO":        string(OrgEdmundOptics),
		"Edmund":    string(OrgEdmundOptics),
		"NI":        string(OrgNationalInstruments),
		"Newport":   string(OrgNewport),
		"FLIR":      string(OrgTeledyneFLIR),
		"Zeiss":     string(OrgZeiss),
	})

	register(CategoryModality, members(AllModalities()), map[string]string{
		"BEHAVIOR_VIDEOS": string(ModalityBehaviorVideos),
		"ophys":           string(ModalityPOPHYS),
		"spim":            string(ModalitySPIM),
	})

	register(CategorySizeUnit, members(AllSizeUnits()), map[string]string{
		"m":  string(SizeMeter),
		"cm": string(SizeCentimeter),
		"mm": string(SizeMillimeter),
		"um": string(SizeMicrometer),
		"µm": string(SizeMicrometer),
		"nm": string(SizeNanometer),
		"in": string(SizeInch),
		"px": string(SizePixel),
	})

	register(CategoryFrequencyUnit, members(AllFrequencyUnits()), map[string]string{
		"Hz":  string(FrequencyHertz),
		"kHz": string(FrequencyKilohertz),
		"MHz": string(FrequencyMegahertz),
	})

	register(CategoryPowerUnit, members(AllPowerUnits()), map[string]string{
		"W":  string(PowerWatt),
		"mW": string(PowerMilliwatt),
		"uW": string(PowerMicrowatt),
		"µW": string(PowerMicrowatt),
		"%":  string(PowerPercent),
	})

	register(CategoryTemperatureUnit, members(AllTemperatureUnits()), map[string]string{
		"C": string(TemperatureCelsius),
		"K": string(TemperatureKelvin),
	})

	register(CategoryAnatomicalRelative, members(AllAnatomicalRelatives()), nil)
	register(CategoryCameraTarget, members(AllCameraTargets()), nil)

	register(CategoryDataInterface, members(AllDataInterfaces()), map[string]string{
		"ETH":  string(InterfaceEthernet),
		"PCIE": string(InterfacePCIe),
	})

	register(CategoryFilterType, members(AllFilterTypes()), map[string]string{
		"BANDPASS":  string(FilterBandpass),
		"LONGPASS":  string(FilterLongpass),
		"SHORTPASS": string(FilterShortpass),
		"ND":        string(FilterNeutralDensity),
	})

	register(CategoryCooling, members(AllCoolings()), map[string]string{
		"NO_COOLING": string(CoolingNone),
		"None":       string(CoolingNone),
	})

	register(CategoryChroma, members(AllChromas()), map[string]string{
		"BW":    string(ChromaMonochrome),
		"COLOR": string(ChromaColor),
	})

	register(CategoryDetectorType, members(AllDetectorTypes()), map[string]string{
		"PMT": string(DetectorPMT),
	})

	register(CategoryImmersionMedium, members(AllImmersionMedia()), nil)

	register(CategoryComponentKind, members(AllComponentKinds()), map[string]string{
		"CameraAssembly":     string(KindCameraAssembly),
		"DAQDevice":          string(KindDAQDevice),
		"LightEmittingDiode": string(KindLightEmittingDiode),
		"PockelsCell":        string(KindPockelsCell),
	})
}

// members converts a typed constant list to plain strings.
func members[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// register builds the lookup table for one category.
//
// Each canonical value is also reachable through its constant-style spelling
// (upper case, spaces and hyphens replaced by underscores), which is how the
// values are written in older documents.
func register(cat Category, values []string, aliases map[string]string) {
	t := &table{
		canonical: make(map[string]string, len(values)*2+len(aliases)),
		members:   values,
	}
	for _, v := range values {
		t.canonical[v] = v
	}
	for _, v := range values {
		alias := constantName(v)
		if _, taken := t.canonical[alias]; !taken {
			t.canonical[alias] = v
		}
	}
	for alias, v := range aliases {
		if _, ok := t.canonical[v]; !ok {
			panic(fmt.Sprintf("vocab: alias %q in %s targets non-member %q", alias, cat, v))
		}
		t.canonical[alias] = v
	}
	tables[cat] = t
}

var constantReplacer = strings.NewReplacer(" ", "_", "-", "_", ":", "_")

// constantName returns the upper-snake spelling of a value ("Band pass" -> "BAND_PASS").
func constantName(v string) string {
	return strings.ToUpper(constantReplacer.Replace(v))
}

// Lookup returns the canonical form of candidate within category.
//
// Returns ErrUnknownEnumerationValue when candidate is not an accepted spelling
// of any member, and ErrUnknownCategory when the category has no table.
func Lookup(cat Category, candidate string) (string, error) {
	t, ok := tables[cat]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	if v, ok := t.canonical[candidate]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s %q", ErrUnknownEnumerationValue, cat, candidate)
}

// IsMember reports whether candidate is an accepted spelling within category.
func IsMember(cat Category, candidate string) bool {
	_, err := Lookup(cat, candidate)
	return err == nil
}

// Members returns the canonical values of a category in registry order.
// Returns nil for an unknown category.
func Members(cat Category) []string {
	t, ok := tables[cat]
	if !ok {
		return nil
	}
	out := make([]string, len(t.members))
	copy(out, t.members)
	return out
}

// Categories returns all registered categories sorted by name.
func Categories() []Category {
	out := make([]Category, 0, len(tables))
	for c := range tables {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// canonical looks up a typed value in its category.
func canonical[T ~string](cat Category, v T) (T, error) {
	c, err := Lookup(cat, string(v))
	if err != nil {
		return "", err
	}
	return T(c), nil
}

// Canonical returns the canonical organization name.
func (o Organization) Canonical() (Organization, error) {
	return canonical(CategoryOrganization, o)
}

// Canonical returns the canonical modality tag.
func (m Modality) Canonical() (Modality, error) { return canonical(CategoryModality, m) }

// Canonical returns the canonical size unit.
func (u SizeUnit) Canonical() (SizeUnit, error) { return canonical(CategorySizeUnit, u) }

// Canonical returns the canonical frequency unit.
func (u FrequencyUnit) Canonical() (FrequencyUnit, error) {
	return canonical(CategoryFrequencyUnit, u)
}

// Canonical returns the canonical power unit.
func (u PowerUnit) Canonical() (PowerUnit, error) { return canonical(CategoryPowerUnit, u) }

// Canonical returns the canonical temperature unit.
func (u TemperatureUnit) Canonical() (TemperatureUnit, error) {
	return canonical(CategoryTemperatureUnit, u)
}

// Canonical returns the canonical anatomical direction.
func (a AnatomicalRelative) Canonical() (AnatomicalRelative, error) {
	return canonical(CategoryAnatomicalRelative, a)
}

// Canonical returns the canonical camera target.
func (t CameraTarget) Canonical() (CameraTarget, error) {
	return canonical(CategoryCameraTarget, t)
}

// Canonical returns the canonical data interface.
func (d DataInterface) Canonical() (DataInterface, error) {
	return canonical(CategoryDataInterface, d)
}

// Canonical returns the canonical filter type.
func (f FilterType) Canonical() (FilterType, error) { return canonical(CategoryFilterType, f) }

// Canonical returns the canonical cooling value.
func (c Cooling) Canonical() (Cooling, error) { return canonical(CategoryCooling, c) }

// Canonical returns the canonical chroma value.
func (c Chroma) Canonical() (Chroma, error) { return canonical(CategoryChroma, c) }

// Canonical returns the canonical detector type.
func (d DetectorType) Canonical() (DetectorType, error) {
	return canonical(CategoryDetectorType, d)
}

// Canonical returns the canonical immersion medium.
func (m ImmersionMedium) Canonical() (ImmersionMedium, error) {
	return canonical(CategoryImmersionMedium, m)
}

// Canonical returns the canonical component kind.
func (k ComponentKind) Canonical() (ComponentKind, error) {
	return canonical(CategoryComponentKind, k)
}
