package lookup

import "github.com/pkg/errors"

// Not-found class. Of absorbs these, Coalesce does not.
var (
	ErrMissingAttribute = errors.New("no such attribute")
	ErrMissingKey       = errors.New("no such key or index")
)

// Everything else is a usage error and is never absorbed.
var (
	ErrKeyType      = errors.New("invalid key type")
	ErrNotIndexable = errors.New("value is not indexable")
	ErrNotCallable  = errors.New("value is not callable")
	ErrBadArguments = errors.New("bad call arguments")
)

// IsNotFound reports whether err belongs to the not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMissingAttribute) || errors.Is(err, ErrMissingKey)
}
