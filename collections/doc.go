// Package collections provides a small generic, immutable Collection type with
// the map/filter/reduce style operations the walkthrough examples are built on.
//
// # Overview
//
// The central type is [Collection][T], a wrapper around a slice of T with a
// chainable API:
//
//	joined := collections.From(products).
//	    Filter(func(p catalog.Product, _ int) bool { return len(p.Name) <= 5 }).
//	    Implode(", ", func(p catalog.Product) string { return p.Name })
//
// # Immutability
//
// Constructors copy their input and every transformation returns a new
// Collection. Fixtures passed through a pipeline are never modified.
//
// # Type-transforming operations
//
// Operations that change the element type are package-level functions:
// [Map], [Reduce], [Pluck], [KeyBy] and [UniqueKeys].
package collections
