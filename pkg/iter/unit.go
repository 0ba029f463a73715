package iter

// unitIterator is an iterator over exactly one item.
type unitIterator[T any] struct {
	item    T
	visited bool
}

// NewUnitIterator constructs an iterator producing exactly one item. Used
// by `return(x)` in the combinator kernel: a parser that always succeeds
// with x, consuming nothing.
func NewUnitIterator[T any](item T) Iterator[T] {
	return &unitIterator[T]{item, false}
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *unitIterator[T]) HasNext() bool {
	return !p.visited
}

// Next returns the next item, and advances the iterator.
func (p *unitIterator[T]) Next() T {
	p.visited = true
	return p.item
}
