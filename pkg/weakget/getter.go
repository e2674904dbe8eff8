package weakget

import "github.com/ib-77/weakget/pkg/weakget/lookup"

// Getter starts chains that resolve lookups with a specific Resolver.
type Getter struct {
	resolver *lookup.Resolver
}

// Using returns a Getter bound to r. A nil r means lookup.Default.
func Using(r *lookup.Resolver) Getter {
	if r == nil {
		r = lookup.Default
	}
	return Getter{resolver: r}
}

// Of is the Getter form of the package-level Of.
func (g Getter) Of(v any) Chain {
	return weak(g.resolver, v, "")
}

// Coalesce is the Getter form of the package-level Coalesce.
func (g Getter) Coalesce(vs ...any) Chain {
	return coalesce(g.resolver, vs)
}
