// Package archive stores every serialized instrument document in SQLite.
//
// Each Save adds a revision. Revisions are never updated or deleted, so the
// history of a rig's description can be replayed: Latest returns the current
// document, History every revision newest first, and Load rebuilds the
// instrument from a stored document.
//
// Documents are stored byte-for-byte as written, keyed by a UUID and
// deduplicated per instrument on their SHA-256 digest.
package archive
