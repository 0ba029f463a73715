package raw

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/mixfixgo/mixfix/pkg/comb"
	"github.com/mixfixgo/mixfix/pkg/iter"
	"github.com/mixfixgo/mixfix/pkg/source"
)

// Grounded on pkg/util/source/sexp/parser.go's List/Set recursive-descent
// reader, reworked from hand-rolled index-chasing onto the nondeterministic
// comb kernel so that the "this grammar is unambiguous" claim below is
// actually checked at parse time rather than just asserted in a comment.
//
// Grammar (informal):
//
//	p0 := p1 (WS+ p1)*          -- RawApp, or its single child
//	p1 := '(' p0 ')'            -- Paren
//	    | '{' p0 '}'            -- Braces
//	    | DIGIT+                -- RawLit
//	    | idStart idChar*       -- Name
//	WS      := unicode whitespace
//	idChar  := any rune other than whitespace, '(', ')', '{', '}'
//	idStart := idChar that is not a DIGIT
//
// The exported Parse additionally tolerates leading and trailing
// whitespace around the whole expression; the grammar above governs only
// the separators an application spine requires internally.
type charParser = comb.Parser[rune, Raw]

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIDChar(r rune) bool {
	return !unicode.IsSpace(r) && r != '(' && r != ')' && r != '{' && r != '}'
}

func isIDStart(r rune) bool { return isIDChar(r) && !isDigit(r) }

func char(c rune) comb.Parser[rune, rune] {
	return comb.Sat(func(r rune) bool { return r == c })
}

// withSpan wraps a rune-level parser so that every node it produces is
// registered in m with the span of text it was read from, computed from
// how much of the total-length input remains before and after p runs. m
// may be nil, in which case this is a no-op pass-through -- used by Parse,
// which only needs the Raw tree itself, not its source map.
func withSpan(total int, m *source.Map[Raw], p charParser) charParser {
	if m == nil {
		return p
	}

	return func(input []rune) iter.Iterator[comb.Result[rune, Raw]] {
		start := total - len(input)

		return iter.NewProjectIterator(p(input), func(r comb.Result[rune, Raw]) comb.Result[rune, Raw] {
			if !m.Has(r.Value) {
				m.Put(r.Value, source.NewSpan(start, total-len(r.Remaining)))
			}

			return r
		})
	}
}

// grammar builds the p0 parser. It returns p0 itself, closing p1's
// recursive cases (Paren, Braces) over a one-shot mutable cell, per the
// fixpoint pattern used again, at a higher level, in pkg/mixfix. total and
// m, when m is non-nil, record the span of source text each constructed
// node came from, for ParseFile's callers (editors, REPLs, a host system's
// own diagnostics) that want to underline a sub-tree in the original text;
// Parse itself passes a nil map and pays nothing for the bookkeeping.
func grammar(total int, m *source.Map[Raw]) charParser {
	var p0 charParser

	ref := func(input []rune) iter.Iterator[comb.Result[rune, Raw]] {
		return p0(input)
	}

	litP := withSpan(total, m, comb.Map(comb.Many1(comb.Sat(isDigit)), func(ds []rune) Raw {
		n := new(big.Int)
		n.SetString(string(ds), 10)

		return &Lit{n}
	}))

	nameP := withSpan(total, m, comb.Bind(comb.Sat(isIDStart), func(first rune) charParser {
		return comb.Map(comb.Many(comb.Sat(isIDChar)), func(rest []rune) Raw {
			return &Name{string(first) + string(rest)}
		})
	}))

	parenP := withSpan(total, m, comb.Bind(char('('), func(rune) charParser {
		return comb.Bind(ref, func(inner Raw) charParser {
			return comb.Map(char(')'), func(rune) Raw {
				return &Paren{inner}
			})
		})
	}))

	bracesP := withSpan(total, m, comb.Bind(char('{'), func(rune) charParser {
		return comb.Bind(ref, func(inner Raw) charParser {
			return comb.Map(char('}'), func(rune) Raw {
				return &Braces{inner}
			})
		})
	}))

	p1 := comb.Choice(parenP, bracesP, litP, nameP)

	ws1 := comb.Many1(comb.Sat(unicode.IsSpace))

	rest := comb.Many(comb.Bind(ws1, func([]rune) charParser { return p1 }))

	p0 = withSpan(total, m, comb.Map(comb.Seq2(p1, rest), func(pr comb.Pair[Raw, []Raw]) Raw {
		return NewApp(append([]Raw{pr.First}, pr.Second...))
	}))

	return ref
}

// Parse reads s into a Raw tree. It returns an error naming "no parse" or
// "ambiguous parse" rather than guessing, matching the library's general
// refusal to silently pick a branch.
//
// For this grammar, ambiguous parse should be unreachable: p1's four
// alternatives are mutually exclusive on their leading rune, and Many's
// all-prefixes-are-alternatives behaviour never yields two distinct
// whole-input parses here because the rejected prefixes can never
// themselves be extended to consume the rest of the input (WS+ requires an
// actual separator, and none of p1's alternatives match whitespace). The
// check is kept anyway, as a defensive invariant rather than a load-bearing
// case.
func Parse(s string) (Raw, error) {
	r, _, err := parse(s, nil)
	return r, err
}

// ParseFile is Parse, but additionally returns a source.Map recording the
// span of input text each node of the result was read from, anchored on a
// source.File named name. Callers embedding this library in an editor,
// REPL, or other tool that reports diagnostics against the original text
// want this; Parse exists separately so the common case -- just get me the
// tree -- does not pay for bookkeeping it will not use.
func ParseFile(name, s string) (Raw, *source.Map[Raw], *source.File, error) {
	file := source.NewFile(name, s)
	m := source.NewMap[Raw](file)

	r, _, err := parse(s, m)
	if err != nil {
		return nil, nil, nil, err
	}

	return r, m, file, nil
}

func parse(s string, m *source.Map[Raw]) (Raw, *source.Map[Raw], error) {
	total := len([]rune(s))
	p0 := grammar(total, m)

	ws0 := comb.Many(comb.Sat(unicode.IsSpace))
	full := comb.Bind(ws0, func([]rune) charParser {
		return comb.Bind(p0, func(r Raw) charParser {
			return comb.Map(ws0, func([]rune) Raw { return r })
		})
	})

	results := iter.TakeUpTo(comb.Parse(full, []rune(s)), 2)

	switch len(results) {
	case 0:
		return nil, nil, fmt.Errorf("parseRaw: no parse")
	case 1:
		return results[0], m, nil
	default:
		shows := make([]string, len(results))
		for i, r := range results {
			shows[i] = r.String()
		}

		return nil, nil, fmt.Errorf("parseRaw: ambiguous parse: %s", strings.Join(shows, " | "))
	}
}
