package weakget

import "github.com/ib-77/weakget/pkg/weakget/lookup"

// ErrorChain collapses to Nothing when an attribute or item is not found.
// A nil value is an ordinary value here.
type ErrorChain struct {
	_        [0]func()
	value    any
	path     string
	resolver *lookup.Resolver
}

// Of starts an ErrorChain on v. v must not be a Chain itself.
func Of(v any) Chain {
	return weak(lookup.Default, v, "")
}

func weak(r *lookup.Resolver, v any, path string) Chain {
	if isChain(v) {
		return misuse(path, "Of argument must not be a fellow chain")
	}
	return ErrorChain{value: v, path: path, resolver: r}
}

// Attr collapses to Nothing when name is missing.
func (c ErrorChain) Attr(name string) Chain {
	out, err := c.res().Attr(c.value, name)
	return c.next(out, err, c.path+"."+name)
}

// Item collapses to Nothing when key is missing or out of range.
func (c ErrorChain) Item(key any) Chain {
	out, err := c.res().Item(c.value, key)
	return c.next(out, err, c.path+lookup.FormatKey(key))
}

// Call never collapses. Every error from the call breaks the chain.
func (c ErrorChain) Call(args ...any) Chain {
	path := callPath(c.path, args)
	out, err := c.res().Call(c.value, args...)
	if err != nil {
		return breakAt(path, err)
	}
	return weak(c.res(), out, path)
}

func (c ErrorChain) next(out any, err error, path string) Chain {
	switch {
	case err == nil:
		return weak(c.res(), out, path)
	case lookup.IsNotFound(err):
		return Nothing
	}
	return breakAt(path, err)
}

// res tolerates the zero value of the chain type.
func (c ErrorChain) res() *lookup.Resolver {
	if c.resolver == nil {
		return lookup.Default
	}
	return c.resolver
}

// Or returns the wrapped value; the default is only used by Nothing.
func (c ErrorChain) Or(any) (any, error) { return c.value, nil }

// Err is always nil for a live chain.
func (c ErrorChain) Err() error { return nil }

// Path returns the operations that led to this value.
func (c ErrorChain) Path() string { return c.path }

func (c ErrorChain) link() {}
