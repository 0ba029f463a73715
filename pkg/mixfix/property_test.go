package mixfix

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genArith builds arbitrary, fully-parenthesised arithmetic expression
// source text over the arith grammar, so that every generated string has
// exactly one parse regardless of the grammar's own precedence table -- the
// property below is about display's idempotence, not about precedence.
func genArith(depth int) gopter.Gen {
	atom := gen.IntRange(1, 99).Map(func(n int) string { return fmt.Sprintf("%d", n) })

	if depth <= 0 {
		return atom
	}

	sub := genArith(depth - 1)

	combine := func(op string) gopter.Gen {
		return gopter.CombineGens(sub, sub).Map(func(v []interface{}) string {
			return fmt.Sprintf("(%s %s %s)", v[0].(string), op, v[1].(string))
		})
	}

	return gen.OneGenOf(
		atom,
		combine("+"),
		combine("-"),
		combine("*"),
		combine("/"),
		sub.Map(func(s string) string { return fmt.Sprintf("(- %s)", s) }),
	)
}

// TestMixfixDisplayRoundTrip checks that redisplaying a parsed expression and
// reparsing the result reproduces the same display: Parse(g,
// e.String()).String() == e.String(), the Exp-tree analogue of
// pkg/raw's round-trip property.
func TestMixfixDisplayRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	g := arith()

	properties.Property("parse(show(parse(s))) == show(parse(s))", prop.ForAll(
		func(s string) bool {
			e1, err := Parse(g, s)
			if err != nil {
				return true // s need not be a valid program; only check when it is.
			}

			shown := e1.String()

			e2, err := Parse(g, shown)
			if err != nil {
				return false
			}

			return e2.String() == shown
		},
		genArith(3),
	))

	properties.TestingRun(t)
}

// TestMixfixAssociativityLaw checks that a left-associative chain "a - b - c"
// always parses to an *Op whose left operand is the nested "-" *Op and whose
// right operand is not an *Op, never the right grouping.
func TestMixfixAssociativityLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	g := arith()

	properties.Property("a - b - c is (a - b) - c, not a - (b - c)", prop.ForAll(
		func(a, b, c int) bool {
			src := fmt.Sprintf("%d - %d - %d", a, b, c)

			e, err := Parse(g, src)
			if err != nil {
				return false
			}

			op, ok := e.(*Op)
			if !ok {
				return false
			}

			left, ok := op.Args[0].(*Op)
			if !ok {
				return false
			}

			_, rightIsOp := op.Args[1].(*Op)

			return left.Parts[0] == "-" && !rightIsOp
		},
		gen.IntRange(0, 100), gen.IntRange(0, 100), gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
