// Package mixfix implements the mixfix expression parser (component C): it
// resolves a pkg/raw.Raw tree into a structured Exp tree according to a
// user-supplied, precedence-ordered operator grammar, reporting "no parse"
// or "ambiguous parse" rather than guessing when the grammar does not pin
// down a unique reading.
package mixfix

import (
	"math/big"
	"strings"

	"github.com/mixfixgo/mixfix/pkg/raw"
)

// Exp is a fully resolved expression node: every application and mixfix
// operator use has been reconciled against the grammar, and every
// parenthesisation has been discharged.
type Exp interface {
	isExp()
	// String renders e canonically. Parenthesisation follows a fixed
	// threshold rule (see Op.display and App.display) rather than the
	// grammar's precedence, so every non-closed operator nested in another
	// comes back parenthesised.
	String() string
	// display is String, but told the precedence demanded by the context it
	// sits in, which decides whether this node is wrapped in parentheses.
	display(ctxPrec int) string
}

// Id is a variable or operator-free identifier reference.
type Id struct {
	Name string
}

func (*Id) isExp() {}

func (i *Id) String() string { return i.Name }

func (i *Id) display(int) string { return i.Name }

// Lit is an integer literal.
type Lit struct {
	Value *big.Int
}

func (*Lit) isExp() {}

func (l *Lit) String() string { return l.Value.String() }

func (l *Lit) display(int) string { return l.Value.String() }

// Arg pairs an applied argument with its hiding, reusing raw.Arg's shape
// instantiated over Exp instead of raw.Raw.
type Arg = raw.Arg[Exp]

// App is a left-associated application of a function expression to one
// argument. A multi-argument application `f a b c` is App(App(App(f,a),b),c).
type App struct {
	Func Exp
	Arg  Arg
}

func (*App) isExp() {}

func (a *App) String() string { return a.display(0) }

// display follows the canonical rendering rule literally: App is
// parenthesised only when its surrounding context demands precedence
// greater than 1. The function position is rendered at context 1, so a
// left-nested chain of applications (`f x y` = `App(App(f,x),y)`) never
// grows spurious parens around its own function position; the argument
// position is rendered at context 2, so a *nested* App used as an
// argument (as opposed to application's own left-recursion) is always
// parenthesised, since juxtaposition alone cannot otherwise tell the two
// apart when redisplayed.
func (a *App) display(ctxPrec int) string {
	var b strings.Builder

	b.WriteString(a.Func.display(1))
	b.WriteByte(' ')

	if a.Arg.Hiding == raw.Hidden {
		b.WriteByte('{')
		b.WriteString(a.Arg.Value.display(0))
		b.WriteByte('}')
	} else {
		b.WriteString(a.Arg.Value.display(2))
	}

	s := b.String()
	if ctxPrec > 1 {
		return "(" + s + ")"
	}

	return s
}

// Fixity classifies how a mixfix operator's fragments and operands
// interleave, and so how it must be parenthesised to redisplay it
// unambiguously.
type Fixity int

const (
	// FixPrefix operators have no leading operand: `parts... arg`.
	FixPrefix Fixity = iota
	// FixPostfix operators have no trailing operand: `arg parts...`.
	FixPostfix
	// FixInfixL operators are left-associative: `left part right`, where a
	// same-precedence operator may appear unparenthesised on the left but
	// not on the right.
	FixInfixL
	// FixInfixR is FixInfixL's mirror image.
	FixInfixR
	// FixNonfix operators are closed: no leading or trailing operand, and
	// never need parentheses since their own fragments fully delimit them.
	FixNonfix
)

// Op is a resolved use of a mixfix operator. Parts are its identifier
// fragments in order; Args are its operand sub-expressions. Fixity,
// stamped on by the grammar level that produced this Op, governs how
// display interleaves Parts and Args to reconstruct the same reading; it
// is not recoverable from Parts/Args alone. There is no stored numeric
// precedence: display follows the spec's own rule literally, which is a
// single parenthesise-or-not threshold rather than a precedence
// comparison, and the grammar's actual precedence is purely positional
// (a level's index in Grammar.Levels).
type Op struct {
	Parts  []string
	Args   []Exp
	Fixity Fixity
}

func (*Op) isExp() {}

func (o *Op) String() string { return o.display(0) }

// display implements the canonical rendering rule literally: a closed
// (FixNonfix) operator never needs outer parens, since its own fragments
// fully delimit it; every other operator is parenthesised whenever it sits
// in any context that demands precedence at all (ctxPrec > 0). Every
// argument or internal hole of an Op is, in turn, rendered at context 1 --
// uniformly, regardless of fixity or position -- which is what makes a
// same-shaped operator nested inside another always come back
// parenthesised, e.g. `x + y * z` -> `x + (y * z)`, `x + y + z` ->
// `(x + y) + z`, `- x !` -> `(- x) !`.
func (o *Op) display(ctxPrec int) string {
	var b strings.Builder

	switch o.Fixity {
	case FixNonfix:
		for i, part := range o.Parts {
			if i > 0 {
				b.WriteByte(' ')
				b.WriteString(o.Args[i-1].display(1))
				b.WriteByte(' ')
			}

			b.WriteString(part)
		}

		return b.String()

	case FixPrefix:
		// Args holds len(Parts)-1 internal holes (one per gap between
		// fragments) followed by the one trailing external operand, per
		// OpTemplate/Prefix in grammar.go.
		n := len(o.Parts)

		for i := 0; i < n; i++ {
			b.WriteString(o.Parts[i])
			b.WriteByte(' ')

			if i < n-1 {
				b.WriteString(o.Args[i].display(1))
				b.WriteByte(' ')
			}
		}

		b.WriteString(o.Args[n-1].display(1))

	case FixPostfix:
		// Args holds one leading external operand followed by
		// len(Parts)-1 internal holes, per Postfix in grammar.go.
		b.WriteString(o.Args[0].display(1))

		for i, part := range o.Parts {
			b.WriteByte(' ')
			b.WriteString(part)

			if i < len(o.Parts)-1 {
				b.WriteByte(' ')
				b.WriteString(o.Args[i+1].display(1))
			}
		}

	case FixInfixL, FixInfixR:
		b.WriteString(o.Args[0].display(1))
		b.WriteByte(' ')
		b.WriteString(o.Parts[0])
		b.WriteByte(' ')
		b.WriteString(o.Args[1].display(1))
	}

	s := b.String()
	if ctxPrec > 0 {
		return "(" + s + ")"
	}

	return s
}
