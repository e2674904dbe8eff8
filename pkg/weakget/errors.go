package weakget

import "github.com/pkg/errors"

var (
	// ErrMisuse is returned for a chain built around another chain, or a
	// Coalesce without candidates.
	ErrMisuse = errors.New("chain misuse")
	// ErrWrongType is returned by OrAs when the extracted value is not a T.
	ErrWrongType = errors.New("unexpected value type")
)
