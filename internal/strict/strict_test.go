package strict

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "known fields", input: `{"name":"a","value":1.5}`},
		{name: "missing fields allowed", input: `{"name":"a"}`},
		{name: "unknown field", input: `{"name":"a","colour":"red"}`, wantErr: true},
		{name: "wrong type", input: `{"name":3}`, wantErr: true},
		{name: "trailing value", input: `{"name":"a"} {"name":"b"}`, wantErr: true},
		{name: "trailing whitespace", input: "{\"name\":\"a\"}\n\n"},
		{name: "duplicate member", input: `{"name":"a","value":1,"name":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s sample
			err := Unmarshal([]byte(tt.input), &s)
			if (err != nil) != tt.wantErr {
				t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshal_TrailingDataSentinel(t *testing.T) {
	var s sample
	err := Unmarshal([]byte(`{"name":"a"}[]`), &s)
	if !errors.Is(err, ErrTrailingData) {
		t.Errorf("Unmarshal() error = %v, want %v", err, ErrTrailingData)
	}
}

func TestDiscriminator(t *testing.T) {
	got, err := Discriminator([]byte(`{"object_type":"Laser","wavelength":910}`))
	if err != nil || got != "Laser" {
		t.Errorf("Discriminator() = %q, %v; want Laser", got, err)
	}

	got, err = Discriminator([]byte(`{"wavelength":910}`))
	if err != nil || got != "" {
		t.Errorf("Discriminator() without member = %q, %v; want empty", got, err)
	}

	_, err = Discriminator([]byte(`{"object_type":7}`))
	if err == nil || !strings.Contains(err.Error(), "object_type") {
		t.Errorf("Discriminator() with numeric member error = %v, want object_type error", err)
	}
}

func TestUniqueKeys(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "flat", input: `{"a":1,"b":2}`},
		{name: "same key in sibling objects", input: `[{"a":1},{"a":2}]`},
		{name: "same key at different depths", input: `{"a":{"a":{"a":1}}}`},
		{name: "keys after nested values", input: `{"a":[1,{"b":2}],"b":{"c":[]},"c":3}`},
		{name: "scalar document", input: `42`},
		{name: "top-level duplicate", input: `{"a":1,"b":2,"a":3}`, wantErr: true},
		{name: "nested duplicate", input: `{"a":[{"x":1,"x":1}]}`, wantErr: true},
		{name: "duplicate after nested object", input: `{"a":{"b":1},"a":{"b":1}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UniqueKeys([]byte(tt.input))
			if tt.wantErr && !errors.Is(err, ErrDuplicateKey) {
				t.Errorf("UniqueKeys(%s) error = %v, want %v", tt.input, err, ErrDuplicateKey)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("UniqueKeys(%s) error = %v", tt.input, err)
			}
		})
	}
}
