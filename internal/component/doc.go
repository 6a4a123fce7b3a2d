// Package component models the hardware that makes up an instrument.
//
// Component is a closed sum type: the variants declared in this package are
// its only implementations, and code that needs variant-specific behavior
// switches on the concrete type with a default branch that reports an
// unhandled variant. TestKindCoverage fails when a new variant is added
// without being wired into every switch.
//
// Values are built as plain structs and then passed through Validate, which
// applies defaults, canonicalizes enumeration values and checks every rule
// the variant carries. Validate never modifies its argument; it returns a
// deep copy in canonical form.
//
// Optional fields are pointers. An unset optional field is nil and is written
// to JSON as null, so an unset value is never confused with zero.
package component
