package rigs

import (
	"errors"
	"slices"
	"testing"

	"github.com/nerrad567/rigdesc/internal/component"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

func TestAll(t *testing.T) {
	if got := All(); !slices.Equal(got, []string{Nikon2P1ID}) {
		t.Errorf("All() = %v, want [%s]", got, Nikon2P1ID)
	}
}

func TestBuildUnknown(t *testing.T) {
	if _, err := Build("Zeiss.7"); !errors.Is(err, ErrUnknownRig) {
		t.Errorf("Build() error = %v, want %v", err, ErrUnknownRig)
	}
}

func TestNikon2P1(t *testing.T) {
	inst, err := Build(Nikon2P1ID)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := inst.ModificationDate().String(); got != "2015-01-01" {
		t.Errorf("ModificationDate() = %s", got)
	}
	want := []vocab.Modality{vocab.ModalityBehaviorVideos, vocab.ModalityPOPHYS}
	if got := inst.Modalities(); !slices.Equal(got, want) {
		t.Errorf("Modalities() = %v, want %v", got, want)
	}
	if got := len(inst.Components()); got != 9 {
		t.Errorf("len(Components()) = %d, want 9", got)
	}

	tests := []struct {
		name string
		kind vocab.ComponentKind
	}{
		{name: "Nikon", kind: vocab.KindMicroscope},
		{name: "Ti Sapphire", kind: vocab.KindLaser},
		{name: "MindScope Running Disc", kind: vocab.KindDisc},
		{name: "Eye Camera Assembly", kind: vocab.KindCameraAssembly},
		{name: "Eye Camera Filter", kind: vocab.KindFilter},
		{name: "Body Camera", kind: vocab.KindCamera},
		{name: "Body Camera LED", kind: vocab.KindLightEmittingDiode},
		{name: "Stimulus Monitor", kind: vocab.KindMonitor},
		{name: "Sync", kind: vocab.KindDAQDevice},
	}
	for _, tt := range tests {
		c, err := inst.FindComponent(tt.name)
		if err != nil {
			t.Errorf("FindComponent(%q) error = %v", tt.name, err)
			continue
		}
		if c.Kind() != tt.kind {
			t.Errorf("FindComponent(%q).Kind() = %q, want %q", tt.name, c.Kind(), tt.kind)
		}
	}

	c, _ := inst.FindComponent("Ti Sapphire")
	if l := c.(*component.Laser); l.WavelengthUnit != vocab.SizeNanometer {
		t.Errorf("laser wavelength unit = %q, want default %q", l.WavelengthUnit, vocab.SizeNanometer)
	}
}
