package rigs

import (
	"time"

	"github.com/nerrad567/rigdesc/internal/component"
	"github.com/nerrad567/rigdesc/internal/geometry"
	"github.com/nerrad567/rigdesc/internal/instrument"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// Nikon2P1ID identifies the Nikon two-photon single plane ophys rig.
const Nikon2P1ID = "Nikon2P.1"

// Nikon2P1 describes the Nikon two-photon single plane ophys rig.
//
// The description was put together years after the rig was built, from
// incomplete records. The modification date is a placeholder.
func Nikon2P1() (*instrument.Instrument, error) {
	bregma := geometry.BregmaARI()

	return instrument.NewBuilder(Nikon2P1ID).
		ModificationDate(instrument.MustDate(2015, time.January, 1)).
		CoordinateSystem(bregma).
		Modalities(vocab.ModalityPOPHYS, vocab.ModalityBehaviorVideos).
		Notes("Created several years posthoc from incomplete records. Much information is missing.").
		Add(
			&component.Microscope{
				Device: component.Device{
					Name:         "Nikon",
					Manufacturer: vocab.OrgNikon,
					Model:        ptr("A1R MP+"),
					Notes:        ptr("Adapted to provide space for behavior apparatus"),
				},
			},
			&component.Laser{
				Device: component.Device{
					Name:         "Ti Sapphire",
					Manufacturer: vocab.OrgCoherentScientific,
					Model:        ptr("Chameleon Ti:Sapphire"),
				},
				Wavelength: 910,
			},
			&component.Disc{
				Device: component.Device{
					Name:         "MindScope Running Disc",
					Manufacturer: vocab.OrgAIND,
				},
				SurfaceMaterial: ptr("Kittrich Magic Cover Solid Grip Liner"),
				Radius:          8.255,
				RadiusUnit:      vocab.SizeCentimeter,
				Output:          ptr("Digital Output"),
				Encoder:         ptr("CUI Devices AMT102-V 0000 Dip Switch 2048 ppr"),
				Decoder:         ptr("LS7366R"),
				EncoderFirmware: &component.Software{
					Name:    "ls7366r_quadrature_counter",
					Version: ptr("0.1.6"),
				},
			},
			&component.CameraAssembly{
				Name:             "Eye Camera Assembly",
				Target:           vocab.TargetEye,
				RelativePosition: []vocab.AnatomicalRelative{vocab.Right},
				Camera:           behaviorCamera("Eye Camera"),
				Lens: &component.Lens{
					Device: component.Device{Name: "Eye Camera Lens", Manufacturer: vocab.OrgEdmundOptics, Model: ptr("InfiniStix")},
				},
				Filter: &component.Filter{
					Device:           component.Device{Name: "Eye Camera Filter", Manufacturer: vocab.OrgSemrock, Model: ptr("FF01-850/10-25")},
					FilterType:       vocab.FilterBandpass,
					CenterWavelength: ptr(850),
				},
			},
			&component.LightEmittingDiode{
				Device:     component.Device{Name: "Eye Tracking LED", Manufacturer: vocab.OrgAmsOsram, Model: ptr("LZ1-10R702-0000")},
				Wavelength: 850,
			},
			&component.CameraAssembly{
				Name:             "Body Camera Assembly",
				Target:           vocab.TargetBody,
				RelativePosition: []vocab.AnatomicalRelative{vocab.Left, vocab.Posterior},
				Camera:           behaviorCamera("Body Camera"),
				Lens: &component.Lens{
					Device: component.Device{Name: "Body Camera Lens", Manufacturer: vocab.OrgThorlabs, Model: ptr("MVL8M23")},
				},
				Filter: &component.Filter{
					Device:           component.Device{Name: "Body Camera Filter", Manufacturer: vocab.OrgSemrock, Model: ptr("BSP01-785R-25")},
					FilterType:       vocab.FilterShortpass,
					CutOffWavelength: ptr(785),
				},
			},
			&component.LightEmittingDiode{
				Device:     component.Device{Name: "Body Camera LED", Manufacturer: vocab.OrgAmsOsram, Model: ptr("LZ4-40R308-0000")},
				Wavelength: 740,
			},
			&component.Monitor{
				Device: component.Device{
					Name:         "Stimulus Monitor",
					Manufacturer: vocab.OrgASUS,
					Model:        ptr("PA248Q"),
					Notes:        ptr("viewing distance is from screen normal to bregma. Mean luminance 50 cd/m2"),
				},
				RefreshRate:         60,
				Width:               1920,
				Height:              1200,
				SizeUnit:            vocab.SizePixel,
				ViewingDistance:     15,
				ViewingDistanceUnit: vocab.SizeCentimeter,
				RelativePosition:    []vocab.AnatomicalRelative{vocab.Anterior, vocab.Right},
				Contrast:            ptr(30),
				Brightness:          ptr(50),
				CoordinateSystem:    &bregma,
				Transform: geometry.Transform{
					geometry.Affine{Matrix: [][]float64{
						{-0.80914, -0.58761, 0},
						{-0.12391, 0.17063, 0.97751},
						{-0.5744, 0.79095, -0.21087},
					}},
					geometry.Translation{Vector: []float64{0.08751, -0.12079, 0.02298}},
				},
			},
			&component.DAQDevice{
				Device: component.Device{
					Name:         "Sync",
					Manufacturer: vocab.OrgNationalInstruments,
					Model:        ptr("PCI-6612"),
				},
				DataInterface: vocab.InterfacePCIe,
			},
		).
		Build()
}

// behaviorCamera is the Allied camera used for both behavior video streams.
func behaviorCamera(name string) *component.Camera {
	return &component.Camera{
		Device: component.Device{
			Name:         name,
			Manufacturer: vocab.OrgAllied,
			Model:        ptr("Mako G-32B"),
			Notes:        ptr("Assuming same camera as current setup"),
		},
		DetectorType:  vocab.DetectorCamera,
		DataInterface: vocab.InterfaceEthernet,
		Cooling:       vocab.CoolingNone,
		FrameRate:     ptr(30.0),
		FrameRateUnit: ptr(vocab.FrequencyHertz),
		Chroma:        ptr(vocab.ChromaMonochrome),
	}
}
