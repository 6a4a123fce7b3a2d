// Package rigs holds the literal descriptions of known instruments.
package rigs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nerrad567/rigdesc/internal/instrument"
)

// ErrUnknownRig is returned by Build for an identifier with no description.
var ErrUnknownRig = errors.New("rigs: unknown rig")

// registry maps instrument ids to their constructors.
var registry = map[string]func() (*instrument.Instrument, error){
	Nikon2P1ID: Nikon2P1,
}

// All returns the identifiers of every known rig, sorted.
func All() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Build constructs the rig with the given instrument id.
func Build(id string) (*instrument.Instrument, error) {
	fn, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRig, id)
	}
	return fn()
}

func ptr[T any](v T) *T { return &v }
