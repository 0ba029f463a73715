package iter

// flattenIterator adapts a sequence of items S which themselves expand to
// sequences of items T into a single flat sequence of T. The teacher's
// version of this constrains S and T to be comparable; nothing here
// actually needs that (it is never used for lookups), and our element
// types are tree nodes containing slices, which are not comparable, so the
// constraint is dropped.
type flattenIterator[S, T any] struct {
	outer Iterator[S]
	inner Iterator[T]
	fn    func(S) Iterator[T]
}

// NewFlattenIterator adapts a sequence of items S which themselves can be
// iterated as items T into a flat sequence of items T. Used to implement
// `bind(p, f)`: the union, over every (x, rest) produced by p, of the
// results of f(x) run on rest.
func NewFlattenIterator[S, T any](outer Iterator[S], fn func(S) Iterator[T]) Iterator[T] {
	return &flattenIterator[S, T]{outer, nil, fn}
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *flattenIterator[S, T]) HasNext() bool {
	if p.inner != nil && p.inner.HasNext() {
		return true
	}

	for p.outer.HasNext() {
		p.inner = p.fn(p.outer.Next())
		if p.inner.HasNext() {
			return true
		}
	}

	return false
}

// Next returns the next item, and advances the iterator.
func (p *flattenIterator[S, T]) Next() T {
	// Can assume HasNext was called first, as is standard for this kind of
	// iterator.
	return p.inner.Next()
}
