// Package strict decodes JSON against closed schemas. Unknown fields,
// repeated member names and trailing data are errors rather than being
// silently dropped.
package strict

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTrailingData is returned when input continues after the first JSON value.
	ErrTrailingData = errors.New("strict: unexpected data after JSON value")

	// ErrDuplicateKey is returned when an object names the same member twice.
	ErrDuplicateKey = errors.New("strict: duplicate object member")
)

// Unmarshal decodes data into v, rejecting fields that v does not declare.
func Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return UniqueKeys(data)
}

// frame tracks one open object or array while scanning tokens.
type frame struct {
	object  bool
	wantKey bool
	keys    map[string]bool
}

// UniqueKeys returns ErrDuplicateKey if any object in the first JSON value of
// data repeats a member name. Syntax errors are left to the decoder.
func UniqueKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var stack []*frame
	valueDone := func() {
		if n := len(stack); n > 0 && stack[n-1].object {
			stack[n-1].wantKey = true
		}
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}

		if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].wantKey {
			top := stack[n-1]
			if tok == json.Delim('}') {
				stack = stack[:n-1]
				valueDone()
			} else if key, ok := tok.(string); ok {
				if top.keys[key] {
					return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
				}
				top.keys[key] = true
				top.wantKey = false
			}
		} else {
			switch tok {
			case json.Delim('{'):
				stack = append(stack, &frame{object: true, wantKey: true, keys: make(map[string]bool)})
			case json.Delim('['):
				stack = append(stack, &frame{})
			case json.Delim(']'):
				stack = stack[:len(stack)-1]
				valueDone()
			default:
				valueDone()
			}
		}

		if len(stack) == 0 {
			return nil
		}
	}
}

// Discriminator extracts the "object_type" member of a JSON object without
// decoding anything else. An absent member yields an empty string.
func Discriminator(data []byte) (string, error) {
	var head struct {
		ObjectType *string `json:"object_type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", fmt.Errorf("reading object_type: %w", err)
	}
	if head.ObjectType == nil {
		return "", nil
	}
	return *head.ObjectType, nil
}
