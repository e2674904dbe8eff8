package weakget

import (
	"reflect"

	"github.com/pkg/errors"
)

// Chain is a step in a lookup chain: an ErrorChain, an EmptyChain, Nothing,
// or a chain broken by an error that was not absorbed.
//
// Chains are not comparable. Comparing two chains of the same kind through
// the interface, or using one as a map key, panics. Comparing chains of
// different kinds does not panic and is always false, so Of(1) == Nothing
// silently yields false; use IsNothing to test for collapse.
type Chain interface {
	// Attr looks up an exported method or field by name.
	Attr(name string) Chain
	// Item looks up an index, map key or lookup.Range.
	Item(key any) Chain
	// Call invokes the current value.
	Call(args ...any) Chain
	// Or ends the chain. It returns the current value, def once the chain
	// collapsed to Nothing, or the error that broke the chain.
	Or(def any) (any, error)
	// Err returns the error that broke the chain, if any.
	Err() error
	// Path renders the operations applied so far.
	Path() string

	link()
}

type nothing struct {
	_ [0]func()
}

// Nothing is the absorbing end of every collapsed chain.
var Nothing Chain = nothing{}

// IsNothing reports whether c is Nothing.
func IsNothing(c Chain) bool {
	_, ok := c.(nothing)
	return ok
}

func (n nothing) Attr(string) Chain { return n }
func (n nothing) Item(any) Chain { return n }
func (n nothing) Call(...any) Chain { return n }
func (n nothing) Or(def any) (any, error) { return def, nil }
func (n nothing) Err() error { return nil }
func (n nothing) Path() string { return "" }
func (n nothing) link() {}

// broken carries an error that must reach the caller. It absorbs every
// further operation but never yields the default.
type broken struct {
	_    [0]func()
	err  error
	path string
}

func breakAt(path string, err error) Chain {
	if path == "" {
		return broken{err: errors.WithMessage(err, "weakget"), path: path}
	}
	return broken{err: errors.WithMessagef(err, "weakget %s", path), path: path}
}

func (b broken) Attr(string) Chain { return b }
func (b broken) Item(any) Chain { return b }
func (b broken) Call(...any) Chain { return b }
func (b broken) Or(any) (any, error) { return nil, b.err }
func (b broken) Err() error { return b.err }
func (b broken) Path() string { return b.path }
func (b broken) link() {}

func isChain(v any) bool {
	_, ok := v.(Chain)
	return ok
}

func misuse(path, msg string) Chain {
	return breakAt(path, errors.WithMessage(ErrMisuse, msg))
}

func callPath(path string, args []any) string {
	if len(args) == 0 {
		return path + "()"
	}
	return path + "(...)"
}

// OrAs ends the chain like Or and asserts the result to T.
func OrAs[T any](c Chain, def T) (T, error) {
	var zero T
	v, err := c.Or(def)
	if err != nil {
		return zero, err
	}
	if out, ok := v.(T); ok {
		return out, nil
	}
	t := reflect.TypeOf(&zero).Elem()
	if v == nil && nilable(t) {
		return zero, nil
	}
	return zero, errors.Wrapf(ErrWrongType, "%T is not %s", v, t)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// MustOr is like Or but panics if the chain is broken.
func MustOr(c Chain, def any) any {
	v, err := c.Or(def)
	if err != nil {
		panic(err)
	}
	return v
}
