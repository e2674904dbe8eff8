// Package weakget chains attribute, item and call lookups into a single
// expression that ends in a default instead of a crash:
//
//	name, err := weakget.Of(resp).Attr("User").Item(0).Attr("Name").Or("anonymous")
//
// Two chain kinds share one absorbing end, Nothing:
// - Of: ErrorChain, collapses on a missing attribute or key
// - Coalesce: EmptyChain, collapses on an empty value (see lookup.IsEmpty)
//
// Coalesce(a, b, c) starts from the first non-empty candidate. For Of, nil
// is an ordinary value.
//
// Any error that is not absorbed breaks the chain. A broken chain ignores
// further operations and Or returns its error, never the default.
//
// Chains are not comparable: == between two chains of the same kind, and
// using a chain as a map key, panic at run time.
package weakget
