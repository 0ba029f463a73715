// Package iter provides a small generic lazy-iterator abstraction, used by
// pkg/comb to represent the (potentially large) set of successful parses of
// a nondeterministic parser without having to materialise it eagerly.
//
// Unlike a slice, an Iterator only produces its next element when asked.
// This lets a caller such as pkg/comb's whole-input driver stop pulling
// elements the moment it has seen enough of them (zero, one, or two) to
// know the outcome, rather than enumerating every parse of a pathological
// grammar.
package iter

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Iterator enumerates a (possibly infinite) sequence of elements.
type Iterator[T any] interface {
	// HasNext checks whether or not there are any items remaining to visit.
	HasNext() bool
	// Next returns the next item, and advances the iterator.
	Next() T
}

// Collect drains the iterator into a new slice.
func Collect[T any](it Iterator[T]) []T {
	items := make([]T, 0)

	for it.HasNext() {
		items = append(items, it.Next())
	}

	return items
}

// Find returns the index of the first match for a given predicate, or false
// if no match is found before the iterator is exhausted. This mutates the
// iterator.
func Find[T any](it Iterator[T], predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for it.HasNext() {
		if predicate(it.Next()) {
			return index, true
		}

		index++
	}

	return 0, false
}

// TakeUpTo drains at most n items from the iterator, stopping early if the
// iterator is exhausted first. This is the short-circuiting primitive the
// mixfix driver uses to check "0, 1, or >=2 whole-input parses" without
// enumerating every candidate of an ambiguous or pathological grammar.
func TakeUpTo[T any](it Iterator[T], n uint) []T {
	items := make([]T, 0, n)

	for uint(len(items)) < n && it.HasNext() {
		items = append(items, it.Next())
	}

	return items
}
