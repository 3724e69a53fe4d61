package collections

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something of another type. Go methods cannot
// introduce their own type parameters, so these live outside the type:
//
//	lengths := collections.Map(names, func(s string, _ int) int { return len(s) })

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Collection[U]{items: out}
}

// Reduce folds Collection[T] into a single value of type U, left to right.
//
//	total := collections.Reduce(c, func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a single field U from every item T.
//
//	names := collections.Pluck(products, func(p catalog.Product) string { return p.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ int) U { return fn(item) })
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(c.items))
	for _, item := range c.items {
		out[fn(item)] = item
	}
	return out
}

// UniqueKeys returns the keys extracted by fn in order of first appearance.
// Paired with [KeyBy] it gives an insertion-ordered view of a last-write-wins map.
func UniqueKeys[T any, K comparable](c *Collection[T], fn func(T) K) []K {
	seen := make(map[K]struct{}, len(c.items))
	out := make([]K, 0, len(c.items))
	for _, item := range c.items {
		k := fn(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
