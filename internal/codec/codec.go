package codec

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nerrad567/rigdesc/internal/component"
	"github.com/nerrad567/rigdesc/internal/geometry"
	"github.com/nerrad567/rigdesc/internal/instrument"
	"github.com/nerrad567/rigdesc/internal/strict"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// document is the wire form of an instrument. Member order here is the
// canonical member order.
type document struct {
	InstrumentID       string                         `json:"instrument_id"`
	ModificationDate   instrument.Date                `json:"modification_date"`
	CoordinateSystem   geometry.CoordinateSystem      `json:"coordinate_system"`
	Modalities         []vocab.Modality               `json:"modalities"`
	Notes              *string                        `json:"notes"`
	TemperatureControl *instrument.TemperatureControl `json:"temperature_control"`
	Components         component.List                 `json:"components"`
}

// Serialize returns the canonical JSON document for x, indented by two
// spaces and ending in a newline.
func Serialize(x *instrument.Instrument) ([]byte, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: instrument is nil", ErrSchemaValidation)
	}
	doc := document{
		InstrumentID:       x.InstrumentID(),
		ModificationDate:   x.ModificationDate(),
		CoordinateSystem:   x.CoordinateSystem(),
		Modalities:         x.Modalities(),
		Notes:              x.Notes(),
		TemperatureControl: x.TemperatureControl(),
		Components:         x.Components(),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding instrument %s: %w", x.InstrumentID(), err)
	}
	return buf.Bytes(), nil
}

// Deserialize parses a document and builds the instrument it describes,
// re-running every instrument invariant.
func Deserialize(data []byte) (*instrument.Instrument, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not a JSON document", ErrMalformedInput)
	}

	var doc document
	if err := strict.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, strict.ErrTrailingData) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSchemaValidation, err)
	}

	inst, err := instrument.New(instrument.Fields{
		InstrumentID:       doc.InstrumentID,
		ModificationDate:   doc.ModificationDate,
		CoordinateSystem:   doc.CoordinateSystem,
		Modalities:         doc.Modalities,
		Notes:              doc.Notes,
		TemperatureControl: doc.TemperatureControl,
	}, doc.Components...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaValidation, err)
	}
	return inst, nil
}

// RoundTrip serializes x, reads the text back and checks the result equals x
// and serializes to the same bytes. It returns the canonical text.
func RoundTrip(x *instrument.Instrument) ([]byte, error) {
	first, err := Serialize(x)
	if err != nil {
		return nil, err
	}
	back, err := Deserialize(first)
	if err != nil {
		return nil, fmt.Errorf("%w: reading back %s: %w", ErrRoundTrip, x.InstrumentID(), err)
	}
	if !back.Equal(x) {
		return nil, fmt.Errorf("%w: %s reads back as a different instrument", ErrRoundTrip, x.InstrumentID())
	}
	second, err := Serialize(back)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRoundTrip, err)
	}
	if !bytes.Equal(first, second) {
		return nil, fmt.Errorf("%w: %s re-serializes to different bytes", ErrRoundTrip, x.InstrumentID())
	}
	return first, nil
}

// Digest returns the hex SHA-256 of a canonical document.
func Digest(doc []byte) string {
	sum := sha256.Sum256(doc)
	return hex.EncodeToString(sum[:])
}
