package mixfix

import (
	"github.com/mixfixgo/mixfix/pkg/comb"
	"github.com/mixfixgo/mixfix/pkg/iter"
	"github.com/mixfixgo/mixfix/pkg/raw"
	log "github.com/sirupsen/logrus"
)

// Level builds the parser for one precedence tier. next is the parser for
// the adjacent, tighter-binding tier (or Build's reserved-name-aware atom,
// for the tightest level); top is the fixpoint of the whole grammar, used by
// constructs like Nonfix whose holes accept a full expression regardless of
// precedence, the same way a parenthesis does. reserved is the grammar's
// full set of operator fragments; only restrictedAtom, at the base of the
// chain, actually consults it.
type Level func(next, top Parser, reserved map[string]bool) Parser

// Grammar is a precedence-ordered list of levels, loosest-binding first --
// the order in which a caller lists infixl("+") before infixl("*") so that
// "+" binds the loosest -- together with the set of identifier fragments
// those levels use.
//
// Reserved must list every fragment appearing in any Prefix, Postfix,
// InfixL, InfixR or Nonfix level. Without it, a bare use of that identifier
// as an ordinary name (an App argument, or a plain operand) would parse
// two ways -- as the name itself, and as part of an operator -- and every
// expression using the operator would come back "ambiguous parse" instead
// of resolving to the operator. This mirrors how a real mixfix system
// (Agda's notation, for instance) treats operator fragments as reserved
// words once declared.
type Grammar struct {
	Levels   []Level
	Reserved []string
}

// Build ties a Grammar into a single recursive Parser. The tightest
// level's "next" is a reserved-name-aware atom: a single token resolved by
// recursing through the entire grammar again (so a parenthesised group, or
// an argument that is itself a nested application, reaches every
// precedence level), but refusing to read a name in g.Reserved as a plain
// identifier.
//
// This is the fixpoint pattern this library uses twice: a one-shot mutable
// cell (top) is referenced, by closure, by code built before the cell
// itself is assigned. Nothing calls through the closure until Build has
// returned and a caller starts parsing, by which point top already holds
// its final value.
func Build(g Grammar) Parser {
	var top Parser

	ref := func(input []raw.Raw) iter.Iterator[comb.Result[raw.Raw, Exp]] {
		return top(input)
	}

	reserved := make(map[string]bool, len(g.Reserved))
	for _, r := range g.Reserved {
		reserved[r] = true
	}

	log.Debugf("mixfix: building grammar with %d levels, %d reserved fragments", len(g.Levels), len(reserved))

	p := restrictedAtom(ref, reserved)
	for i := len(g.Levels) - 1; i >= 0; i-- {
		p = g.Levels[i](p, ref, reserved)
	}

	top = p

	return ref
}

// restrictedAtom is atom, but rejecting a Name token whose value is
// reserved -- used only as the base of the precedence chain, where a bare
// identifier and an operator fragment would otherwise be indistinguishable.
func restrictedAtom(p Parser, reserved map[string]bool) Parser {
	notReserved := func(r raw.Raw) bool {
		n, ok := r.(*raw.Name)
		return !ok || !reserved[n.Value]
	}

	return comb.Bind(comb.Sat(notReserved), func(r raw.Raw) Parser {
		exp, err := ParseExp(p, r)
		if err != nil {
			return comb.Fail[raw.Raw, Exp]()
		}

		return comb.Return[raw.Raw, Exp](exp)
	})
}

// Atom consumes exactly one token from the raw.Raw stream and resolves it
// against grammar p via ParseExp, regardless of what kind of node it is --
// this is how a parenthesised group, or an entire nested application,
// reaches back into the full grammar from a single token position. Unlike
// the base the precedence chain is actually built on, Atom accepts any
// name; it is exposed for callers who want single-token lookahead without
// the reserved-word restriction.
func Atom(p Parser) Parser { return atom(p) }

// Ident matches and discards a single token that is exactly the identifier
// name, for recognising an operator's fragments.
func Ident(name string) comb.Parser[raw.Raw, raw.Raw] { return ident(name) }

// OpTemplate is the general mixfix template parser: given hole, a parser
// for what may occupy each internal gap, and an operator's identifier
// fragments in order, it consumes parts[0] ... parts[n-1] and returns the
// n-1 values read out of the holes strictly between them. It has no
// opinion about what (if anything) sits outside the template -- that is
// each fixity's own business: Nonfix uses the result as-is, Prefix appends
// one trailing operand, Postfix prepends one leading operand.
func OpTemplate(hole Parser, parts []string) comb.Parser[raw.Raw, []Exp] {
	return opHoles(hole, parts)
}

func opHoles(hole Parser, parts []string) comb.Parser[raw.Raw, []Exp] {
	if len(parts) == 0 {
		panic("mixfix: empty mixfix operator")
	}

	return comb.Bind(ident(parts[0]), func(raw.Raw) comb.Parser[raw.Raw, []Exp] {
		return opHolesRest(hole, parts[1:], nil)
	})
}

func opHolesRest(hole Parser, remaining []string, args []Exp) comb.Parser[raw.Raw, []Exp] {
	if len(remaining) == 0 {
		return comb.Return[raw.Raw, []Exp](args)
	}

	return comb.Bind(hole, func(h Exp) comb.Parser[raw.Raw, []Exp] {
		return comb.Bind(ident(remaining[0]), func(raw.Raw) comb.Parser[raw.Raw, []Exp] {
			return opHolesRest(hole, remaining[1:], append(append([]Exp{}, args...), h))
		})
	})
}

// AppLevel is the application level: `f`, or `f a1 a2 ...` left-associated into
// nested App nodes. Both the function position and every argument
// position are parsed against next, the same next-tighter level, not top
// -- an App argument is only ever as big as whatever next itself matches
// (typically Nonfix's closed brackets falling through to a single atom),
// never a nested application in its own right. Using top there instead,
// as an earlier version of this package did, let the same token run
// recurse back through App itself and made `f x y` ambiguous between
// `(f x) y` and `f (x y)`. A parenthesised or braced sub-expression still
// reaches the whole grammar regardless of where in next's chain it is
// matched, since a *raw.Paren token is resolved by ParseExp against top
// (see restrictedAtom) and a *raw.Braces argument by arg's hidden branch,
// also against top, not next.
func AppLevel() Level {
	return func(next, top Parser, _ map[string]bool) Parser {
		return comb.Bind(next, func(fn Exp) Parser {
			return appRest(fn, next, top)
		})
	}
}

func appRest(fn Exp, next, top Parser) Parser {
	return func(input []raw.Raw) iter.Iterator[comb.Result[raw.Raw, Exp]] {
		stop := iter.NewUnitIterator(comb.Result[raw.Raw, Exp]{Value: fn, Remaining: input})
		cont := comb.Bind(arg(next, top), func(a Arg) Parser {
			return appRest(&App{Func: fn, Arg: a}, next, top)
		})(input)

		return iter.NewAppendIterator(cont, stop)
	}
}

// Prefix builds a level for a right-recursive prefix mixfix operator:
// `parts[0] hole parts[1] hole … parts[n-1] operand`, chaining so that a
// second occurrence of the same template may itself fill the operand (e.g.
// double negation, or nested `if _ then _`). Each application extends the
// operator's Args by appending the trailing operand after the n-1 internal
// holes OpTemplate already read. Single-fragment use (Prefix("-")) is the
// n=1 special case: zero internal holes, Args holding only the trailing
// operand. A level's precedence is purely positional -- its index within
// Grammar.Levels -- so there is no prec parameter to pass here.
func Prefix(parts ...string) Level {
	return func(next, top Parser, _ map[string]bool) Parser {
		var self Parser

		self = comb.Alt(
			comb.Bind(OpTemplate(top, parts), func(holes []Exp) Parser {
				return comb.Map(self, func(operand Exp) Exp {
					return &Op{Parts: parts, Args: append(append([]Exp{}, holes...), operand), Fixity: FixPrefix}
				})
			}),
			next,
		)

		return self
	}
}

// Postfix mirrors Prefix: `operand parts[0] hole parts[1] hole … parts[n-1]`,
// left-folding so repeated occurrences chain (`x ! !`). Each application
// prepends the accumulated operand to the n-1 internal holes OpTemplate
// reads.
func Postfix(parts ...string) Level {
	return func(next, top Parser, _ map[string]bool) Parser {
		return comb.Bind(next, func(operand Exp) Parser {
			return postfixRest(operand, parts, top)
		})
	}
}

func postfixRest(acc Exp, parts []string, top Parser) Parser {
	return func(input []raw.Raw) iter.Iterator[comb.Result[raw.Raw, Exp]] {
		stop := iter.NewUnitIterator(comb.Result[raw.Raw, Exp]{Value: acc, Remaining: input})
		cont := comb.Bind(OpTemplate(top, parts), func(holes []Exp) Parser {
			applied := &Op{Parts: parts, Args: append([]Exp{acc}, holes...), Fixity: FixPostfix}
			return postfixRest(applied, parts, top)
		})(input)

		return iter.NewAppendIterator(cont, stop)
	}
}

// InfixL builds a left-associative binary operator level for one or more
// fragments sharing a precedence, e.g. InfixL("+", "-"), chaining via
// ChainL1 so `a - b + c` associates as `(a - b) + c`.
func InfixL(fragments ...string) Level {
	return func(next, _ Parser, _ map[string]bool) Parser {
		return comb.ChainL1(next, infixCombiner(FixInfixL, fragments))
	}
}

// InfixR is InfixL's right-associative mirror, via ChainR1.
func InfixR(fragments ...string) Level {
	return func(next, _ Parser, _ map[string]bool) Parser {
		return comb.ChainR1(next, infixCombiner(FixInfixR, fragments))
	}
}

func infixCombiner(fixity Fixity, fragments []string) comb.Parser[raw.Raw, comb.Combiner[Exp]] {
	choices := make([]comb.Parser[raw.Raw, comb.Combiner[Exp]], len(fragments))

	for i, fragment := range fragments {
		fragment := fragment
		choices[i] = comb.Map(ident(fragment), func(raw.Raw) comb.Combiner[Exp] {
			return func(left, right Exp) Exp {
				return &Op{Parts: []string{fragment}, Args: []Exp{left, right}, Fixity: fixity}
			}
		})
	}

	return comb.Choice(choices...)
}

// Nonfix builds a level for a closed operator: parts interleaved with
// len(parts)-1 internal holes, no leading or trailing operand, e.g.
// "[ _ ]". Each hole accepts a full expression,
// parsed against the grammar's top rather than against next (see
// OpTemplate): a hole generally spans more than one token (e.g.
// "[ a + b ]" reads "a + b" whole into its one hole, since the raw reader
// does not itself know "+" is an operator), so it must run the whole
// grammar, nondeterministically, over however many tokens the
// sub-expression in that position actually takes. Like every other level,
// it falls through to next when its leading fragment does not match, so it
// composes in the same precedence chain as the other fixities.
func Nonfix(parts []string) Level {
	return func(next, top Parser, _ map[string]bool) Parser {
		closed := comb.Map(OpTemplate(top, parts), func(holes []Exp) Exp {
			return &Op{Parts: parts, Args: holes, Fixity: FixNonfix}
		})

		return comb.Alt(closed, next)
	}
}
