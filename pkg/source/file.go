package source

import "fmt"

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// String returns the text of this line.
func (p Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a
// string has line number 1.
func (p Line) Number() int {
	return p.number
}

// File represents an in-memory expression fragment being parsed. Unlike the
// wider host system, this library never reads files from disk: callers hand
// it strings.
type File struct {
	// Name used purely for diagnostics (e.g. "expr", a REPL line number).
	name string
	// Contents of this "file".
	contents []rune
}

// NewFile wraps a string of source text for position tracking.
func NewFile(name string, text string) *File {
	return &File{name, []rune(text)}
}

// Name returns the diagnostic name associated with this file.
func (s *File) Name() string {
	return s.name
}

// Contents returns the contents of this file.
func (s *File) Contents() []rune {
	return s.contents
}

// SyntaxError constructs a syntax error over a given span of this file with
// a given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the first line in this file which
// encloses the start of a span. If the position is beyond the bounds of the
// file then the last physical line is returned.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	index := span.start
	num := 1
	start := 0

	for i := 0; i < len(s.contents); i++ {
		if i == index {
			end := findEndOfLine(index, s.contents)
			return Line{s.contents, Span{start, end}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}

	return Line{s.contents, Span{start, len(s.contents)}, num}
}

func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}

	return len(text)
}

// SyntaxError is a structured error which retains the span into the
// original input where an error occurred, along with an error message.
//
// mixfix.ParseFile returns one when resolution fails; its Error() is exactly
// the contracted message (e.g. "no parse"), so callers that only check the
// message see no difference. The span is retained as well, since it is
// useful for tooling built atop this library (editors, REPLs) that want to
// underline the offending text.
type SyntaxError struct {
	file *File
	span Span
	msg  string
}

// File returns the file that this syntax error covers.
func (p *SyntaxError) File() *File {
	return p.file
}

// Span returns the span of the original text on which this error is
// reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return p.msg
}

// String renders a human-facing form including the source position,
// primarily useful for editor / REPL tooling built atop this library.
func (p *SyntaxError) String() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.msg)
}
