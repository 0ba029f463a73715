// Package source provides position-tracking primitives shared by the raw
// reader and the mixfix expression parser: spans into the original input,
// a handle on the input text itself, and a mapping from constructed tree
// nodes back to the span of text from which they arose.
package source

// Span represents a contiguous slice of the original string. Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices. This allows us to do certain things, such as determine
// the enclosing line, etc.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the
// original string.
func (p Span) Length() int {
	return p.end - p.start
}

// Merge returns the smallest span enclosing both p and q.
func (p Span) Merge(q Span) Span {
	start := p.start
	if q.start < start {
		start = q.start
	}

	end := p.end
	if q.end > end {
		end = q.end
	}

	return Span{start, end}
}
