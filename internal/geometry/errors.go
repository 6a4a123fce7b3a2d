package geometry

import "errors"

// Domain errors for the geometry package.
var (
	// ErrDimensionMismatch is returned when a matrix is not square or when
	// operations, points and coordinate systems disagree on dimension.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrNonFiniteValue is returned when a transform contains NaN or Inf,
	// which has no JSON representation.
	ErrNonFiniteValue = errors.New("geometry: non-finite value")

	// ErrUnknownOperation is returned when decoding an operation whose
	// object_type is not Affine, Translation or Scale.
	ErrUnknownOperation = errors.New("geometry: unknown operation")

	// ErrInvalidCoordinateSystem is returned when a coordinate system is
	// missing its name, origin or axes, or repeats an axis.
	ErrInvalidCoordinateSystem = errors.New("geometry: invalid coordinate system")
)
