package geometry

import (
	"errors"
	"testing"

	"github.com/nerrad567/rigdesc/internal/vocab"
)

func TestBregmaARI(t *testing.T) {
	cs := BregmaARI()
	if cs.Dimension() != 3 {
		t.Fatalf("Dimension() = %d, want 3", cs.Dimension())
	}
	valid, err := cs.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !valid.Equal(cs) {
		t.Errorf("Validate() = %+v, want unchanged %+v", valid, cs)
	}

	want := []vocab.AnatomicalRelative{vocab.Anterior, vocab.Right, vocab.Inferior}
	for i, ax := range cs.Axes {
		if ax.Direction != want[i] {
			t.Errorf("axis %s direction = %q, want %q", ax.Name, ax.Direction, want[i])
		}
	}
}

func TestLibrary(t *testing.T) {
	cs, err := Library("BREGMA_ARI")
	if err != nil {
		t.Fatalf("Library() error = %v", err)
	}
	cs.Axes[0].Name = "changed"
	if BregmaARI().Axes[0].Name != "AP" {
		t.Error("modifying a library result changed the library")
	}

	if _, err := Library("LAMBDA_ARI"); !errors.Is(err, ErrInvalidCoordinateSystem) {
		t.Errorf("Library(unknown) error = %v, want %v", err, ErrInvalidCoordinateSystem)
	}
	if names := LibraryNames(); len(names) != 1 || names[0] != "BREGMA_ARI" {
		t.Errorf("LibraryNames() = %v", names)
	}
}

func TestCoordinateSystemValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cs *CoordinateSystem)
		wantErr error
	}{
		{name: "missing name", mutate: func(cs *CoordinateSystem) { cs.Name = "" }, wantErr: ErrInvalidCoordinateSystem},
		{name: "missing origin", mutate: func(cs *CoordinateSystem) { cs.Origin = "" }, wantErr: ErrInvalidCoordinateSystem},
		{name: "no axes", mutate: func(cs *CoordinateSystem) { cs.Axes = nil }, wantErr: ErrInvalidCoordinateSystem},
		{name: "duplicate axis", mutate: func(cs *CoordinateSystem) { cs.Axes[1].Name = "AP" }, wantErr: ErrInvalidCoordinateSystem},
		{name: "unknown unit", mutate: func(cs *CoordinateSystem) { cs.AxisUnit = "furlong" }, wantErr: vocab.ErrUnknownEnumerationValue},
		{name: "unknown direction", mutate: func(cs *CoordinateSystem) { cs.Axes[2].Direction = "Up" }, wantErr: vocab.ErrUnknownEnumerationValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := BregmaARI()
			tt.mutate(&cs)
			if _, err := cs.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoordinateSystemValidateCanonicalizes(t *testing.T) {
	cs := BregmaARI()
	cs.AxisUnit = "mm"
	cs.Axes[1].Direction = "RIGHT"

	got, err := cs.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !got.Equal(BregmaARI()) {
		t.Errorf("Validate() = %+v, want %+v", got, BregmaARI())
	}
	if cs.Axes[1].Direction != "RIGHT" {
		t.Error("Validate() modified its receiver's axes")
	}
}

func TestResolves(t *testing.T) {
	cs := BregmaARI()
	if err := cs.Resolves(Transform{monitorAffine()}); err != nil {
		t.Errorf("Resolves(3D) error = %v", err)
	}
	if err := cs.Resolves(Transform{Scale{Vector: []float64{1, 1}}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Resolves(2D) error = %v, want %v", err, ErrDimensionMismatch)
	}
}
