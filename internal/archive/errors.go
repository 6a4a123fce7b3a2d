package archive

import "errors"

// Domain errors for the archive package.
var (
	// ErrDocumentNotFound is returned when no archived document matches.
	ErrDocumentNotFound = errors.New("archive: document not found")

	// ErrDocumentExists is returned by Save when the instrument's latest
	// revision already holds the same digest.
	ErrDocumentExists = errors.New("archive: document already archived")

	// ErrInvalidRecord is returned by Save for a record missing its
	// instrument id, digest or document.
	ErrInvalidRecord = errors.New("archive: invalid record")
)
