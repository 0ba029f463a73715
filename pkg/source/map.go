package source

// Map maps tree nodes back to the span of text from which they were parsed.
// The raw reader fills one in, raw.ParseFile returns it to its caller, and
// mixfix.ParseFile uses it to anchor a failed resolution's error on the
// span of the parsed node.
type Map[T comparable] struct {
	mapping map[T]Span
	file    *File
}

// NewMap constructs an initially empty source map over a given file.
func NewMap[T comparable](file *File) *Map[T] {
	return &Map[T]{make(map[T]Span), file}
}

// File returns the underlying file on which this map operates.
func (p *Map[T]) File() *File {
	return p.file
}

// Put registers a new node with a given span. Panics if the node is
// registered twice, since that indicates a bug in the reader.
func (p *Map[T]) Put(item T, span Span) {
	if _, ok := p.mapping[item]; ok {
		panic("source map key already exists")
	}

	p.mapping[item] = span
}

// Has checks whether a given node is registered in this map.
func (p *Map[T]) Has(item T) bool {
	_, ok := p.mapping[item]
	return ok
}

// Get determines the span associated with a given node. Panics if the node
// is not registered.
func (p *Map[T]) Get(item T) Span {
	if s, ok := p.mapping[item]; ok {
		return s
	}

	panic("invalid source map key")
}

// SyntaxError constructs a syntax error anchored on the span of the given
// node, or on an unknown-position span if the node was never registered
// (e.g. a node synthesized during mixfix resolution rather than read
// directly off the input).
func (p *Map[T]) SyntaxError(node T, msg string) *SyntaxError {
	if p.Has(node) {
		return p.file.SyntaxError(p.Get(node), msg)
	}

	return p.file.SyntaxError(NewSpan(0, 0), msg)
}
