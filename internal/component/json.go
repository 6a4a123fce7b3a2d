package component

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nerrad567/rigdesc/internal/strict"
	"github.com/nerrad567/rigdesc/internal/vocab"
)

// marshalTagged encodes body as a JSON object whose first member is
// object_type. HTML characters are not escaped.
func marshalTagged(kind Kind, body any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, err
	}
	fields := bytes.TrimSpace(buf.Bytes())
	if len(fields) < 2 || fields[0] != '{' {
		return nil, fmt.Errorf("component: %s did not encode as an object", kind)
	}

	out := make([]byte, 0, len(fields)+len(kind)+20)
	out = append(out, `{"object_type":`...)
	out = append(out, quote(string(kind))...)
	if len(fields) > 2 {
		out = append(out, ',')
	}
	return append(out, fields[1:]...), nil
}

func quote(s string) []byte {
	b, _ := json.Marshal(s)
	return b
}

// unmarshalTagged checks that data carries the object_type of kind (or an
// alias of it) and decodes the remaining members strictly into body.
func unmarshalTagged(data []byte, kind Kind, body any) error {
	if err := strict.UniqueKeys(data); err != nil {
		return err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if members == nil {
		return fmt.Errorf("%w: %s is null", ErrMissingRequiredField, kind)
	}
	raw, ok := members["object_type"]
	if !ok {
		return fmt.Errorf("%w: object_type is missing, want %q", ErrKindMismatch, kind)
	}
	var disc string
	if err := json.Unmarshal(raw, &disc); err != nil {
		return fmt.Errorf("reading object_type: %w", err)
	}
	got, err := vocab.ComponentKind(disc).Canonical()
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownKind, disc)
	}
	if got != kind {
		return fmt.Errorf("%w: object_type %q, want %q", ErrKindMismatch, disc, kind)
	}
	delete(members, "object_type")

	rest, err := json.Marshal(members)
	if err != nil {
		return err
	}
	return strict.Unmarshal(rest, body)
}

// Every variant writes object_type as its first member and decodes strictly.

func (m Microscope) MarshalJSON() ([]byte, error) {
	type wire Microscope
	return marshalTagged(vocab.KindMicroscope, wire(m))
}

func (m *Microscope) UnmarshalJSON(data []byte) error {
	type wire Microscope
	return unmarshalTagged(data, vocab.KindMicroscope, (*wire)(m))
}

func (o Objective) MarshalJSON() ([]byte, error) {
	type wire Objective
	return marshalTagged(vocab.KindObjective, wire(o))
}

func (o *Objective) UnmarshalJSON(data []byte) error {
	type wire Objective
	return unmarshalTagged(data, vocab.KindObjective, (*wire)(o))
}

func (l Laser) MarshalJSON() ([]byte, error) {
	type wire Laser
	return marshalTagged(vocab.KindLaser, wire(l))
}

func (l *Laser) UnmarshalJSON(data []byte) error {
	type wire Laser
	return unmarshalTagged(data, vocab.KindLaser, (*wire)(l))
}

func (l LightEmittingDiode) MarshalJSON() ([]byte, error) {
	type wire LightEmittingDiode
	return marshalTagged(vocab.KindLightEmittingDiode, wire(l))
}

func (l *LightEmittingDiode) UnmarshalJSON(data []byte) error {
	type wire LightEmittingDiode
	return unmarshalTagged(data, vocab.KindLightEmittingDiode, (*wire)(l))
}

func (c Camera) MarshalJSON() ([]byte, error) {
	type wire Camera
	return marshalTagged(vocab.KindCamera, wire(c))
}

func (c *Camera) UnmarshalJSON(data []byte) error {
	type wire Camera
	return unmarshalTagged(data, vocab.KindCamera, (*wire)(c))
}

func (d Detector) MarshalJSON() ([]byte, error) {
	type wire Detector
	return marshalTagged(vocab.KindDetector, wire(d))
}

func (d *Detector) UnmarshalJSON(data []byte) error {
	type wire Detector
	return unmarshalTagged(data, vocab.KindDetector, (*wire)(d))
}

func (a CameraAssembly) MarshalJSON() ([]byte, error) {
	type wire CameraAssembly
	return marshalTagged(vocab.KindCameraAssembly, wire(a))
}

func (a *CameraAssembly) UnmarshalJSON(data []byte) error {
	type wire CameraAssembly
	return unmarshalTagged(data, vocab.KindCameraAssembly, (*wire)(a))
}

func (l Lens) MarshalJSON() ([]byte, error) {
	type wire Lens
	return marshalTagged(vocab.KindLens, wire(l))
}

func (l *Lens) UnmarshalJSON(data []byte) error {
	type wire Lens
	return unmarshalTagged(data, vocab.KindLens, (*wire)(l))
}

func (f Filter) MarshalJSON() ([]byte, error) {
	type wire Filter
	return marshalTagged(vocab.KindFilter, wire(f))
}

func (f *Filter) UnmarshalJSON(data []byte) error {
	type wire Filter
	return unmarshalTagged(data, vocab.KindFilter, (*wire)(f))
}

func (d Disc) MarshalJSON() ([]byte, error) {
	type wire Disc
	return marshalTagged(vocab.KindDisc, wire(d))
}

func (d *Disc) UnmarshalJSON(data []byte) error {
	type wire Disc
	return unmarshalTagged(data, vocab.KindDisc, (*wire)(d))
}

func (m Monitor) MarshalJSON() ([]byte, error) {
	type wire Monitor
	return marshalTagged(vocab.KindMonitor, wire(m))
}

func (m *Monitor) UnmarshalJSON(data []byte) error {
	type wire Monitor
	return unmarshalTagged(data, vocab.KindMonitor, (*wire)(m))
}

func (d DAQDevice) MarshalJSON() ([]byte, error) {
	type wire DAQDevice
	return marshalTagged(vocab.KindDAQDevice, wire(d))
}

func (d *DAQDevice) UnmarshalJSON(data []byte) error {
	type wire DAQDevice
	return unmarshalTagged(data, vocab.KindDAQDevice, (*wire)(d))
}

func (p PockelsCell) MarshalJSON() ([]byte, error) {
	type wire PockelsCell
	return marshalTagged(vocab.KindPockelsCell, wire(p))
}

func (p *PockelsCell) UnmarshalJSON(data []byte) error {
	type wire PockelsCell
	return unmarshalTagged(data, vocab.KindPockelsCell, (*wire)(p))
}

func (c Computer) MarshalJSON() ([]byte, error) {
	type wire Computer
	return marshalTagged(vocab.KindComputer, wire(c))
}

func (c *Computer) UnmarshalJSON(data []byte) error {
	type wire Computer
	return unmarshalTagged(data, vocab.KindComputer, (*wire)(c))
}
