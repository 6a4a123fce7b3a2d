package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nerrad567/rigdesc/internal/component"
	"github.com/nerrad567/rigdesc/internal/geometry"
	"github.com/nerrad567/rigdesc/internal/instrument"
	"github.com/nerrad567/rigdesc/internal/rigs"
	"github.com/nerrad567/rigdesc/internal/strict"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

func ptr[T any](v T) *T { return &v }

// scenarioInstrument is a Nikon2P.1 with one laser and one positioned monitor.
func scenarioInstrument(t *testing.T) *instrument.Instrument {
	t.Helper()
	cs := geometry.BregmaARI()
	inst, err := instrument.NewBuilder("Nikon2P.1").
		ModificationDate(instrument.MustDate(2015, time.January, 1)).
		CoordinateSystem(cs).
		Modalities(vocab.ModalityPOPHYS, vocab.ModalityBehaviorVideos).
		Add(
			&component.Laser{
				Device:     component.Device{Name: "Ti Sapphire", Manufacturer: vocab.OrgCoherentScientific, Model: ptr("Chameleon Ti:Sapphire")},
				Wavelength: 910,
			},
			&component.Monitor{
				Device:           component.Device{Name: "Stimulus Monitor", Manufacturer: vocab.OrgASUS, Model: ptr("PA248Q")},
				RefreshRate:      60,
				Width:            1920,
				Height:           1200,
				ViewingDistance:  15,
				CoordinateSystem: &cs,
				Transform: geometry.Transform{
					geometry.Affine{Matrix: [][]float64{
						{-0.80914, -0.58761, 0},
						{-0.12391, 0.17063, 0.97751},
						{-0.5744, 0.79095, -0.21087},
					}},
					geometry.Translation{Vector: []float64{0.08751, -0.12079, 0.02298}},
				},
			},
		).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return inst
}

func TestEndToEndScenario(t *testing.T) {
	inst := scenarioInstrument(t)

	text, err := Serialize(inst)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	back, err := Deserialize(text)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if !back.Equal(inst) {
		t.Fatal("Deserialize(Serialize(x)) is not equal to x")
	}

	c, err := back.FindComponent("Stimulus Monitor")
	if err != nil {
		t.Fatalf("FindComponent() error = %v", err)
	}
	m := c.(*component.Monitor)
	if len(m.Transform) != 2 {
		t.Fatalf("len(Transform) = %d, want 2", len(m.Transform))
	}
	if _, ok := m.Transform[0].(geometry.Affine); !ok {
		t.Errorf("first operation is %T, want Affine", m.Transform[0])
	}
	tr, ok := m.Transform[1].(geometry.Translation)
	if !ok {
		t.Fatalf("second operation is %T, want Translation", m.Transform[1])
	}
	want := []float64{0.08751, -0.12079, 0.02298}
	for i := range want {
		if tr.Vector[i] != want[i] {
			t.Errorf("translation[%d] = %v, want exactly %v", i, tr.Vector[i], want[i])
		}
	}

	if !back.HasModality(vocab.ModalityPOPHYS) || !back.HasModality(vocab.ModalityBehaviorVideos) || len(back.Modalities()) != 2 {
		t.Errorf("Modalities() = %v, want {POPHYS, BEHAVIOR_VIDEOS}", back.Modalities())
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	inst, err := rigs.Nikon2P1()
	if err != nil {
		t.Fatalf("Nikon2P1() error = %v", err)
	}
	first, err := Serialize(inst)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	for range 5 {
		again, err := Serialize(inst)
		if err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Serialize() produced different bytes for the same instrument")
		}
	}

	if Digest(first) != Digest(bytes.Clone(first)) {
		t.Error("Digest() differs for equal documents")
	}
	if len(Digest(first)) != 64 {
		t.Errorf("Digest() length = %d, want 64 hex characters", len(Digest(first)))
	}
}

func TestSerializeLayout(t *testing.T) {
	text, err := Serialize(scenarioInstrument(t))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	s := string(text)

	if !strings.HasPrefix(s, "{\n  \"instrument_id\": \"Nikon2P.1\",\n  \"modification_date\": \"2015-01-01\",\n") {
		t.Errorf("document does not start with id and date:\n%s", s)
	}
	if !strings.HasSuffix(s, "}\n") {
		t.Error("document does not end with a newline")
	}

	order := []string{`"instrument_id"`, `"modification_date"`, `"coordinate_system"`, `"modalities"`, `"notes"`, `"temperature_control"`, `"components"`}
	last := -1
	for _, key := range order {
		i := strings.Index(s, key)
		if i <= last {
			t.Errorf("%s out of order", key)
		}
		last = i
	}
	for _, want := range []string{
		`"notes": null`,
		`"temperature_control": null`,
		`"object_type": "Laser"`,
		`"object_type": "Translation"`,
		`"modalities": [
    "behavior-videos",
    "pophys"
  ]`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("document missing %s", want)
		}
	}
}

func TestRoundTripNikon(t *testing.T) {
	inst, err := rigs.Nikon2P1()
	if err != nil {
		t.Fatalf("Nikon2P1() error = %v", err)
	}
	text, err := RoundTrip(inst)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	direct, err := Serialize(inst)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !bytes.Equal(text, direct) {
		t.Error("RoundTrip() text differs from Serialize()")
	}
	if !strings.Contains(string(text), `"center_wavelength": 850`) || !strings.Contains(string(text), `"cut_off_wavelength": 785`) {
		t.Error("filter wavelengths missing from document")
	}
}

func TestDeserializeErrors(t *testing.T) {
	valid, err := Serialize(scenarioInstrument(t))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	doc := string(valid)

	tests := []struct {
		name    string
		input   string
		wantErr error
		cause   error
	}{
		{name: "not JSON", input: `{"instrument_id": `, wantErr: ErrMalformedInput},
		{name: "empty", input: ``, wantErr: ErrMalformedInput},
		{name: "trailing data", input: doc + `{}`, wantErr: ErrMalformedInput},
		{
			name:    "unknown component discriminator",
			input:   strings.Replace(doc, `"object_type": "Laser"`, `"object_type": "Maser"`, 1),
			wantErr: ErrSchemaValidation,
			cause:   component.ErrUnknownKind,
		},
		{
			name:    "unknown top-level field",
			input:   strings.Replace(doc, `"notes": null,`, `"notes": null, "owner": "lab",`, 1),
			wantErr: ErrSchemaValidation,
		},
		{
			name:    "wrong type",
			input:   strings.Replace(doc, `"instrument_id": "Nikon2P.1"`, `"instrument_id": 7`, 1),
			wantErr: ErrSchemaValidation,
		},
		{
			name:    "unknown modality",
			input:   strings.Replace(doc, `"pophys"`, `"astrology"`, 1),
			wantErr: ErrSchemaValidation,
			cause:   vocab.ErrUnknownEnumerationValue,
		},
		{
			name:    "invariant violation",
			input:   strings.Replace(doc, `"name": "Stimulus Monitor"`, `"name": "Ti Sapphire"`, 1),
			wantErr: ErrSchemaValidation,
			cause:   instrument.ErrDuplicateName,
		},
		{
			name:    "unknown transform operation",
			input:   strings.Replace(doc, `"object_type": "Translation"`, `"object_type": "Rotation"`, 1),
			wantErr: ErrSchemaValidation,
			cause:   geometry.ErrUnknownOperation,
		},
		{
			name:    "bad date",
			input:   strings.Replace(doc, `"2015-01-01"`, `"2015-13-01"`, 1),
			wantErr: ErrSchemaValidation,
			cause:   instrument.ErrInvalidDate,
		},
		{
			name:    "repeated top-level member",
			input:   strings.Replace(doc, `"instrument_id": "Nikon2P.1",`, `"instrument_id": "Other", "instrument_id": "Nikon2P.1",`, 1),
			wantErr: ErrSchemaValidation,
			cause:   strict.ErrDuplicateKey,
		},
		{
			name:    "repeated component member",
			input:   strings.Replace(doc, `"wavelength": 910,`, `"wavelength": 780, "wavelength": 910,`, 1),
			wantErr: ErrSchemaValidation,
			cause:   strict.ErrDuplicateKey,
		},
		{
			name:    "missing instrument id",
			input:   strings.Replace(doc, `"instrument_id": "Nikon2P.1",`, ``, 1),
			wantErr: ErrSchemaValidation,
			cause:   instrument.ErrInstrumentValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := Deserialize([]byte(tt.input))
			if inst != nil {
				t.Error("Deserialize() returned an instrument alongside an error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Deserialize() error = %v, want %v", err, tt.wantErr)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("Deserialize() error = %v, want cause %v", err, tt.cause)
			}
		})
	}
}

func TestDeserializeAcceptsLegacySpellings(t *testing.T) {
	text, err := Serialize(scenarioInstrument(t))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	legacy := strings.NewReplacer(
		`"pophys"`, `"POPHYS"`,
		`"Coherent Scientific"`, `"COHERENT_SCIENTIFIC"`,
		`"axis_unit": "millimeter"`, `"axis_unit": "mm"`,
	).Replace(string(text))

	inst, err := Deserialize([]byte(legacy))
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	again, err := Serialize(inst)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !bytes.Equal(again, text) {
		t.Errorf("legacy document did not canonicalize:\n%s", again)
	}
}

func TestSerializeNil(t *testing.T) {
	if _, err := Serialize(nil); err == nil {
		t.Error("Serialize(nil) error = nil")
	}
}
