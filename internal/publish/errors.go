package publish

import "errors"

// Domain errors for the publish package.
var (
	// ErrRoundTripFailed is returned when an instrument does not survive
	// serialize/deserialize unchanged. Nothing is written in that case.
	ErrRoundTripFailed = errors.New("publish: round-trip self check failed")

	// ErrInvalidPrefix is returned for a file prefix containing a path.
	ErrInvalidPrefix = errors.New("publish: invalid file prefix")

	// ErrWriteFailed wraps failures writing the standard file.
	ErrWriteFailed = errors.New("publish: writing standard file failed")
)
