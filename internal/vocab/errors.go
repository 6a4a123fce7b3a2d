package vocab

import "errors"

// Domain errors for the vocab package.
var (
	// ErrUnknownEnumerationValue is returned when a candidate is not a member
	// of the closed set for its category.
	ErrUnknownEnumerationValue = errors.New("vocab: unknown enumeration value")

	// ErrUnknownCategory is returned when a lookup names a category that has
	// no registered table.
	ErrUnknownCategory = errors.New("vocab: unknown category")
)
