package geometry

import (
	"fmt"
	"math"
	"slices"
)

// Operation type discriminators written to JSON.
const (
	opAffine      = "Affine"
	opTranslation = "Translation"
	opScale       = "Scale"
)

// Operation is one step of a Transform.
//
// The set of operations is closed: Affine, Translation and Scale are the only
// implementations.
type Operation interface {
	// Dim returns the dimension the operation acts on.
	Dim() int

	validate() error
	apply(p []float64) []float64
	clone() Operation
	equal(other Operation) bool
}

// Affine multiplies a point by a square matrix (rotation, shear, scale).
type Affine struct {
	Matrix [][]float64 `json:"affine_transform"`
}

// Dim returns the row count of the matrix.
func (a Affine) Dim() int { return len(a.Matrix) }

func (a Affine) validate() error {
	n := len(a.Matrix)
	if n == 0 {
		return fmt.Errorf("%w: affine matrix is empty", ErrDimensionMismatch)
	}
	for i, row := range a.Matrix {
		if len(row) != n {
			return fmt.Errorf("%w: affine matrix must be square, row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
		if err := checkFinite(row); err != nil {
			return fmt.Errorf("affine row %d: %w", i, err)
		}
	}
	return nil
}

func (a Affine) apply(p []float64) []float64 {
	out := make([]float64, len(a.Matrix))
	for i, row := range a.Matrix {
		var sum float64
		for j, v := range row {
			sum += v * p[j]
		}
		out[i] = sum
	}
	return out
}

func (a Affine) clone() Operation {
	m := make([][]float64, len(a.Matrix))
	for i, row := range a.Matrix {
		m[i] = slices.Clone(row)
	}
	return Affine{Matrix: m}
}

func (a Affine) equal(other Operation) bool {
	o, ok := other.(Affine)
	if !ok || len(o.Matrix) != len(a.Matrix) {
		return false
	}
	for i := range a.Matrix {
		if !slices.Equal(a.Matrix[i], o.Matrix[i]) {
			return false
		}
	}
	return true
}

// Translation adds a vector to a point.
type Translation struct {
	Vector []float64 `json:"translation"`
}

// Dim returns the vector length.
func (t Translation) Dim() int { return len(t.Vector) }

func (t Translation) validate() error {
	if len(t.Vector) == 0 {
		return fmt.Errorf("%w: translation vector is empty", ErrDimensionMismatch)
	}
	return checkFinite(t.Vector)
}

func (t Translation) apply(p []float64) []float64 {
	out := make([]float64, len(p))
	for i := range p {
		out[i] = p[i] + t.Vector[i]
	}
	return out
}

func (t Translation) clone() Operation { return Translation{Vector: slices.Clone(t.Vector)} }

func (t Translation) equal(other Operation) bool {
	o, ok := other.(Translation)
	return ok && slices.Equal(t.Vector, o.Vector)
}

// Scale multiplies each coordinate by the matching vector element.
type Scale struct {
	Vector []float64 `json:"scale"`
}

// Dim returns the vector length.
func (s Scale) Dim() int { return len(s.Vector) }

func (s Scale) validate() error {
	if len(s.Vector) == 0 {
		return fmt.Errorf("%w: scale vector is empty", ErrDimensionMismatch)
	}
	return checkFinite(s.Vector)
}

func (s Scale) apply(p []float64) []float64 {
	out := make([]float64, len(p))
	for i := range p {
		out[i] = p[i] * s.Vector[i]
	}
	return out
}

func (s Scale) clone() Operation { return Scale{Vector: slices.Clone(s.Vector)} }

func (s Scale) equal(other Operation) bool {
	o, ok := other.(Scale)
	return ok && slices.Equal(s.Vector, o.Vector)
}

func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: element %d is %v", ErrNonFiniteValue, i, v)
		}
	}
	return nil
}

// Transform is an ordered sequence of operations mapping coordinates from a
// component's frame into a coordinate system. A nil Transform is unset.
type Transform []Operation

// Compose validates ops against dimension dim and returns them as a Transform.
// The operations are copied, so later changes to the arguments do not affect
// the result.
//
// Returns ErrDimensionMismatch when a matrix is not square or any operation's
// dimension differs from dim.
func Compose(dim int, ops ...Operation) (Transform, error) {
	t := Transform(ops).Clone()
	if err := t.Validate(dim); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks every operation is well formed and acts on dimension dim.
// An empty transform is valid for any dimension.
func (t Transform) Validate(dim int) error {
	for i, op := range t {
		if op == nil {
			return fmt.Errorf("%w: operation %d is nil", ErrDimensionMismatch, i)
		}
		if err := op.validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		if op.Dim() != dim {
			return fmt.Errorf("%w: operation %d (%s) has dimension %d, want %d",
				ErrDimensionMismatch, i, opName(op), op.Dim(), dim)
		}
	}
	return nil
}

// Dim returns the dimension of the first operation, or 0 for an empty transform.
func (t Transform) Dim() int {
	if len(t) == 0 || t[0] == nil {
		return 0
	}
	return t[0].Dim()
}

// Apply maps point through the operations in order, first operation first.
func (t Transform) Apply(point []float64) ([]float64, error) {
	if err := t.Validate(t.Dim()); err != nil {
		return nil, err
	}
	if len(t) > 0 && len(point) != t.Dim() {
		return nil, fmt.Errorf("%w: point has dimension %d, transform has %d",
			ErrDimensionMismatch, len(point), t.Dim())
	}
	out := slices.Clone(point)
	for _, op := range t {
		out = op.apply(out)
	}
	return out, nil
}

// Clone returns a deep copy. The clone of nil is nil.
func (t Transform) Clone() Transform {
	if t == nil {
		return nil
	}
	out := make(Transform, len(t))
	for i, op := range t {
		if op != nil {
			out[i] = op.clone()
		}
	}
	return out
}

// Equal reports whether both transforms hold the same operations, in the same
// order, with equal values.
func (t Transform) Equal(other Transform) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] == nil || other[i] == nil {
			if t[i] != other[i] {
				return false
			}
			continue
		}
		if !t[i].equal(other[i]) {
			return false
		}
	}
	return true
}

func opName(op Operation) string {
	switch op.(type) {
	case Affine:
		return opAffine
	case Translation:
		return opTranslation
	case Scale:
		return opScale
	default:
		return fmt.Sprintf("%T", op)
	}
}
