// Package codec converts instruments to and from their canonical JSON
// document.
//
// The canonical form is deterministic: members appear in declaration order,
// every component starts with its object_type, unset optional fields are
// written as null, numbers use the shortest representation that reads back
// to the same float64, and HTML characters are not escaped. Serializing the
// same instrument always produces the same bytes.
//
// Deserialize is strict. Unknown or repeated members, wrong types, unknown
// discriminators and instrument invariant violations all fail with
// ErrSchemaValidation; text that is not a single JSON value fails with
// ErrMalformedInput.
package codec
