package mixfix

import (
	"fmt"
	"strings"

	"github.com/mixfixgo/mixfix/pkg/comb"
	"github.com/mixfixgo/mixfix/pkg/iter"
	"github.com/mixfixgo/mixfix/pkg/raw"
	log "github.com/sirupsen/logrus"
)

// Parser is the grammar's entry point: a nondeterministic parser over a
// sequence of sibling raw.Raw nodes (an application spine's children),
// producing Exp. It is the comb kernel's second instantiation, this time
// over raw.Raw tokens rather than runes.
type Parser = comb.Parser[raw.Raw, Exp]

// ParseExp resolves r into an Exp using grammar P, dispatching structurally
// on r's variant the way pkg/util/source/sexp/translator.go's Translator
// dispatches on an SExp's concrete type. A RawApp is the one case requiring
// an actual search: P is run over its children as a token stream, and the
// number of whole-sequence parses determines whether the result is
// "no parse", a unique Exp, or "ambiguous parse". Grammar P itself builds
// Op and App directly as it resolves a RawApp's children, rather than
// first building an intermediate resolved raw.Raw tree for a second pass
// to walk -- so by the time a *raw.App reaches this function, the only
// remaining variants requiring resolution are the unresolved ones the
// reader itself produces.
func ParseExp(p Parser, r raw.Raw) (Exp, error) {
	switch n := r.(type) {
	case *raw.Name:
		return &Id{n.Value}, nil

	case *raw.Lit:
		return &Lit{n.Value}, nil

	case *raw.Paren:
		return ParseExp(p, n.Value)

	case *raw.Braces:
		return nil, fmt.Errorf("bad hidden app")

	case *raw.App:
		results := iter.TakeUpTo(comb.Parse(p, n.Children), 2)

		switch len(results) {
		case 0:
			return nil, fmt.Errorf("no parse")
		case 1:
			return results[0], nil
		default:
			shows := make([]string, len(results))
			for i, e := range results {
				shows[i] = e.String()
			}

			log.Debugf("mixfix: ambiguous parse of %q: %s", n.String(), strings.Join(shows, " | "))

			return nil, fmt.Errorf("ambiguous parse: %s", strings.Join(shows, " | "))
		}

	default:
		return nil, fmt.Errorf("no parse")
	}
}

// atom consumes exactly one raw.Raw token from the stream and resolves it
// via ParseExp against the full grammar P, so that a token which is itself
// a nested application or bracketed group recurses through the whole
// grammar rather than being treated as opaque.
func atom(p Parser) Parser {
	return comb.Bind(comb.Sat(func(raw.Raw) bool { return true }), func(r raw.Raw) Parser {
		exp, err := ParseExp(p, r)
		if err != nil {
			return comb.Fail[raw.Raw, Exp]()
		}

		return comb.Return[raw.Raw, Exp](exp)
	})
}

// arg parses one application argument position: a Braces-wrapped token is
// always exactly one raw.Raw node with its extent already delimited by the
// braces, so it is resolved against top (the whole grammar) and tagged
// Hidden; anything else is parsed against next, the same next-tighter
// level the application's function position itself uses, so an argument
// position can never swallow more than next's own chain allows (App's own
// doc comment explains why that must be next and not top). A bare reserved
// name is refused automatically here, since next's chain bottoms out at
// restrictedAtom -- without that, any operator fragment could also be read
// as a plain identifier applied as an App argument, and every use of the
// operator would come back ambiguous instead of resolving.
func arg(next, top Parser) comb.Parser[raw.Raw, Arg] {
	hidden := comb.Bind(comb.Sat(isBraces), func(r raw.Raw) comb.Parser[raw.Raw, Arg] {
		b := r.(*raw.Braces)

		exp, err := ParseExp(top, b.Value)
		if err != nil {
			return comb.Fail[raw.Raw, Arg]()
		}

		return comb.Return[raw.Raw, Arg](Arg{Hiding: raw.Hidden, Value: exp})
	})

	notHidden := comb.Bind(next, func(exp Exp) comb.Parser[raw.Raw, Arg] {
		return comb.Return[raw.Raw, Arg](Arg{Hiding: raw.NotHidden, Value: exp})
	})

	return comb.Alt(hidden, notHidden)
}

func isBraces(r raw.Raw) bool {
	_, ok := r.(*raw.Braces)
	return ok
}

// ident matches a single token that is exactly the identifier name,
// consuming it and discarding it -- it is used only to recognise an
// operator's fragments within a RawApp's token stream, never retained in
// the resulting Op's Args.
func ident(name string) comb.Parser[raw.Raw, raw.Raw] {
	return comb.Sat(func(r raw.Raw) bool {
		id, ok := r.(*raw.Name)
		return ok && id.Value == name
	})
}
