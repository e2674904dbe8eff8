// Package lookup performs dynamic, reflection based access on arbitrary Go
// values: attribute lookup by name, item lookup by key or Range, and calls.
//
// Failures are reported with sentinel errors that split into two classes:
// - not found: ErrMissingAttribute, ErrMissingKey (see IsNotFound)
// - misuse: ErrKeyType, ErrNotIndexable, ErrNotCallable, ErrBadArguments
//
// A map key of the wrong type is ErrKeyType rather than ErrMissingKey: Go
// maps are typed, so map[string]any indexed with 0 is a usage error and
// breaks an Of chain instead of collapsing it.
//
// A Resolver carries lookup options (WithJSONTags, WithFoldCase,
// WithMapKeys); the package-level Attr, Item and Call use Default.
package lookup
