package iter

// projectIterator lazily applies a function to every item of an underlying
// iterator.
type projectIterator[S, T any] struct {
	iter       Iterator[S]
	projection func(S) T
}

// NewProjectIterator constructs an iterator which is the projection of
// another. Used by comb.Parse to reduce each whole-input result to its
// value, and by the raw reader to record each node's span as it is parsed.
func NewProjectIterator[S, T any](it Iterator[S], projection func(S) T) Iterator[T] {
	return &projectIterator[S, T]{it, projection}
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *projectIterator[S, T]) HasNext() bool {
	return p.iter.HasNext()
}

// Next returns the next item, and advances the iterator.
func (p *projectIterator[S, T]) Next() T {
	return p.projection(p.iter.Next())
}
