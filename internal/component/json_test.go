package component

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nerrad567/rigdesc/internal/strict"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

func TestMarshalDiscriminatorFirst(t *testing.T) {
	data, err := json.Marshal(testLaser())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"object_type":"Laser","name":"Ti Sapphire","manufacturer":"Coherent Scientific",` +
		`"model":"Chameleon Ti:Sapphire","serial_number":null,"notes":null,"wavelength":910,` +
		`"wavelength_unit":"","maximum_power":null,"power_unit":null}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	l := testLaser()
	l.Notes = ptr("power <5 W & stable")
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"notes":"power <5 W & stable"`) {
		t.Errorf("Marshal() = %s, want unescaped notes", data)
	}
}

func TestAssemblyRoundTrip(t *testing.T) {
	in, err := Validate(testAssembly())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"camera":{"object_type":"Camera",`) {
		t.Errorf("owned camera written without discriminator: %s", data)
	}
	if !strings.Contains(string(data), `"led":null`) {
		t.Errorf("unset led not written as null: %s", data)
	}

	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !Equal(in, out) {
		t.Errorf("Decode(Marshal(x)) = %#v, want %#v", out, in)
	}
}

func TestMonitorRoundTripPreservesTransform(t *testing.T) {
	in, err := Validate(testMonitor())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	m := out.(*Monitor)
	if !m.Transform.Equal(in.(*Monitor).Transform) {
		t.Errorf("transform = %#v, want %#v", m.Transform, in.(*Monitor).Transform)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unknown discriminator", input: `{"object_type":"Tachyon emitter","name":"x"}`, wantErr: ErrUnknownKind},
		{name: "missing discriminator", input: `{"name":"Ti Sapphire"}`, wantErr: ErrUnknownKind},
		{
			name:    "owned component of wrong kind",
			input:   `{"object_type":"Camera assembly","name":"a","target":"Eye","relative_position":null,"camera":{"object_type":"Lens","name":"l","manufacturer":"Nikon","model":"m","serial_number":null,"notes":null,"focal_length":null,"focal_length_unit":null},"lens":null,"filter":null,"led":null}`,
			wantErr: ErrKindMismatch,
		},
		{name: "unknown field", input: `{"object_type":"Microscope","name":"Nikon","manufacturer":"Nikon","model":"A1R","serial_number":null,"notes":null,"colour":"grey"}`},
		{name: "wrong type", input: `{"object_type":"Laser","name":"L","manufacturer":"Nikon","model":"m","wavelength":"910"}`},
		{name: "not an object", input: `[1,2]`},
		{
			name:    "repeated member",
			input:   `{"object_type":"Laser","name":"L","manufacturer":"Nikon","model":"m","wavelength":780,"wavelength":910}`,
			wantErr: strict.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatal("Decode() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeAcceptsLegacyDiscriminator(t *testing.T) {
	c, err := Decode([]byte(`{"object_type":"DAQDevice","name":"Sync","manufacturer":"NI","model":"PCI-6612","data_interface":"PCIe"}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if c.Kind() != vocab.KindDAQDevice {
		t.Errorf("Kind() = %q, want %q", c.Kind(), vocab.KindDAQDevice)
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.HasPrefix(string(data), `{"object_type":"DAQ device",`) {
		t.Errorf("Marshal() = %s, want canonical discriminator", data)
	}
}

func TestListUnmarshal(t *testing.T) {
	var l List
	err := json.Unmarshal([]byte(`[
		{"object_type":"Microscope","name":"Nikon","manufacturer":"Nikon","model":"A1R MP+"},
		{"object_type":"Computer","name":"Acq","manufacturer":"ASUS","model":"ROG","operating_system":"Linux"}
	]`), &l)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(l) != 2 || l[0].Kind() != vocab.KindMicroscope || l[1].Kind() != vocab.KindComputer {
		t.Fatalf("Unmarshal() = %#v", l)
	}

	err = json.Unmarshal([]byte(`[{"object_type":"Microscope","name":"Nikon","manufacturer":"Nikon","model":"A"},{"object_type":"Holodeck"}]`), &l)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Unmarshal() error = %v, want %v", err, ErrUnknownKind)
	}
}
