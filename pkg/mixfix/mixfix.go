package mixfix

import "github.com/mixfixgo/mixfix/pkg/raw"

// Parse is the library's main entry point: it reads source with the raw
// reader, then resolves the result against grammar, returning a single
// unambiguous Exp or an error naming why none could be produced.
//
// grammar normally includes AppLevel() near its tightest end, so that
// juxtaposition binds tighter than the prefix, postfix and infix operators
// listed before it; closed (Nonfix) levels may still sit below it, as the
// bracket level does in this package's sample grammar.
func Parse(grammar Grammar, src string) (Exp, error) {
	r, err := raw.Parse(src)
	if err != nil {
		return nil, err
	}

	p := Build(grammar)

	return ParseExp(p, r)
}

// ParseFile is Parse, but on failure anchors the error to a position in src
// via pkg/source, for callers (editors, REPLs, a host system's own
// diagnostics) that want to underline the offending text rather than just
// print a message. name is used purely for diagnostics, the same way
// raw.ParseFile uses it.
func ParseFile(grammar Grammar, name, src string) (Exp, error) {
	r, m, _, err := raw.ParseFile(name, src)
	if err != nil {
		return nil, err
	}

	p := Build(grammar)

	e, err := ParseExp(p, r)
	if err != nil {
		return nil, m.SyntaxError(r, err.Error())
	}

	return e, nil
}
