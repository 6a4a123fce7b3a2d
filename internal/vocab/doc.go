// Package vocab provides the closed vocabularies used to constrain instrument
// description fields: organizations, modalities, units, device kinds and
// anatomical directions.
//
// Every category is an immutable table mapping accepted spellings to a single
// canonical value. Tables are built once in init() and are read-only
// afterwards, so lookups are safe from any goroutine without locking.
//
// # Backward Compatibility
//
// Besides the canonical value, a category accepts legacy aliases (unit
// symbols, constant-style member names, organization abbreviations). A
// document written with an alias still validates; re-serializing it emits the
// canonical spelling. Aliases are only ever added, never removed.
//
// # Usage
//
//	org, err := vocab.Organization("NI").Canonical()
//	// org == vocab.OrgNationalInstruments
//
//	v, err := vocab.Lookup(vocab.CategorySizeUnit, "cm")
//	// v == "centimeter"
//
//	if errors.Is(err, vocab.ErrUnknownEnumerationValue) {
//	    // candidate is not a member of the category
//	}
package vocab
