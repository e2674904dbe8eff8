package weakget

import (
	"github.com/samber/lo"

	"github.com/ib-77/weakget/pkg/weakget/lookup"
)

// EmptyChain collapses to Nothing whenever it meets an empty value (see
// lookup.IsEmpty). Lookup and call errors are never absorbed.
type EmptyChain struct {
	_        [0]func()
	value    any
	path     string
	resolver *lookup.Resolver
}

// Coalesce starts an EmptyChain on the first non-empty candidate, or
// returns Nothing when every candidate is empty.
func Coalesce(vs ...any) Chain {
	return coalesce(lookup.Default, vs)
}

func coalesce(r *lookup.Resolver, vs []any) Chain {
	if len(vs) == 0 {
		return misuse("", "Coalesce expects at least one candidate")
	}
	v, ok := lo.Find(vs, func(v any) bool {
		return !lookup.IsEmpty(v)
	})
	if !ok {
		return Nothing
	}
	return nonEmpty(r, v, "")
}

func nonEmpty(r *lookup.Resolver, v any, path string) Chain {
	if lookup.IsEmpty(v) {
		return Nothing
	}
	if isChain(v) {
		return misuse(path, "Coalesce argument must not be a fellow chain")
	}
	return EmptyChain{value: v, path: path, resolver: r}
}

// Attr collapses to Nothing when the attribute is empty. A missing
// attribute breaks the chain.
func (c EmptyChain) Attr(name string) Chain {
	out, err := c.res().Attr(c.value, name)
	return c.next(out, err, c.path+"."+name)
}

// Item collapses to Nothing when the item is empty. A missing key breaks
// the chain.
func (c EmptyChain) Item(key any) Chain {
	out, err := c.res().Item(c.value, key)
	return c.next(out, err, c.path+lookup.FormatKey(key))
}

// Call collapses to Nothing when the result is empty.
func (c EmptyChain) Call(args ...any) Chain {
	out, err := c.res().Call(c.value, args...)
	return c.next(out, err, callPath(c.path, args))
}

func (c EmptyChain) next(out any, err error, path string) Chain {
	if err != nil {
		return breakAt(path, err)
	}
	return nonEmpty(c.res(), out, path)
}

// res tolerates the zero value of the chain type.
func (c EmptyChain) res() *lookup.Resolver {
	if c.resolver == nil {
		return lookup.Default
	}
	return c.resolver
}

// Or returns the wrapped value, which is never empty.
func (c EmptyChain) Or(any) (any, error) { return c.value, nil }

// Err is always nil for a live chain.
func (c EmptyChain) Err() error { return nil }

// Path returns the operations that led to this value.
func (c EmptyChain) Path() string { return c.path }

func (c EmptyChain) link() {}
