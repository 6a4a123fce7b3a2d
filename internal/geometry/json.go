package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/nerrad567/rigdesc/internal/strict"
)

// MarshalJSON writes the affine operation with its discriminator first.
func (a Affine) MarshalJSON() ([]byte, error) {
	type wire Affine
	return json.Marshal(struct {
		ObjectType string `json:"object_type"`
		wire
	}{opAffine, wire(a)})
}

// MarshalJSON writes the translation with its discriminator first.
func (t Translation) MarshalJSON() ([]byte, error) {
	type wire Translation
	return json.Marshal(struct {
		ObjectType string `json:"object_type"`
		wire
	}{opTranslation, wire(t)})
}

// MarshalJSON writes the scale with its discriminator first.
func (s Scale) MarshalJSON() ([]byte, error) {
	type wire Scale
	return json.Marshal(struct {
		ObjectType string `json:"object_type"`
		wire
	}{opScale, wire(s)})
}

// UnmarshalJSON decodes an ordered list of operations, dispatching on each
// element's object_type. Unknown fields and discriminators are rejected.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*t = nil
		return nil
	}
	ops := make(Transform, 0, len(raw))
	for i, r := range raw {
		op, err := decodeOperation(r)
		if err != nil {
			return fmt.Errorf("transform operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	*t = ops
	return nil
}

func decodeOperation(data []byte) (Operation, error) {
	kind, err := strict.Discriminator(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case opAffine:
		var w struct {
			ObjectType string `json:"object_type"`
			Affine
		}
		if err := strict.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return w.Affine, nil
	case opTranslation:
		var w struct {
			ObjectType string `json:"object_type"`
			Translation
		}
		if err := strict.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return w.Translation, nil
	case opScale:
		var w struct {
			ObjectType string `json:"object_type"`
			Scale
		}
		if err := strict.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return w.Scale, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, kind)
	}
}
