package iter

// filterIterator lazily skips items rejected by a predicate.
type filterIterator[T any] struct {
	iter      Iterator[T]
	predicate Predicate[T]
	pending   T
	buffered  bool
}

// NewFilterIterator constructs an iterator visiting only those items of the
// underlying iterator which satisfy the given predicate. Used by the
// whole-input driver to keep only parses which consumed every token.
func NewFilterIterator[T any](it Iterator[T], predicate Predicate[T]) Iterator[T] {
	return &filterIterator[T]{it, predicate, *new(T), false}
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *filterIterator[T]) HasNext() bool {
	if p.buffered {
		return true
	}

	for p.iter.HasNext() {
		item := p.iter.Next()
		if p.predicate(item) {
			p.pending = item
			p.buffered = true

			return true
		}
	}

	return false
}

// Next returns the next item, and advances the iterator.
func (p *filterIterator[T]) Next() T {
	if !p.buffered && !p.HasNext() {
		panic("filter iterator exhausted")
	}

	p.buffered = false

	return p.pending
}
