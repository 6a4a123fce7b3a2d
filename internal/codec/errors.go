package codec

import "errors"

// Domain errors for the codec package.
var (
	// ErrSchemaValidation is returned when a well-formed document does not
	// describe a valid instrument.
	ErrSchemaValidation = errors.New("codec: schema validation failed")

	// ErrMalformedInput is returned when the text is not a single JSON value.
	ErrMalformedInput = errors.New("codec: malformed input")

	// ErrRoundTrip is returned when a serialized instrument does not read back
	// to an equal instrument with identical bytes.
	ErrRoundTrip = errors.New("codec: round trip mismatch")
)
