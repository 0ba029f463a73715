package comb

import "github.com/mixfixgo/mixfix/pkg/iter"

// Many matches zero or more occurrences of p, greedily, but -- critically
// for a nondeterministic kernel -- it still returns every prefix count as a
// distinct alternative (0 matches, 1 match, 2 matches, ...), not just the
// longest one. The raw reader relies on this: only one of those prefix
// counts leads to a result that accounts for the whole input. The mixfix
// levels (ChainL1/ChainR1 below, and pkg/mixfix's application and postfix
// levels) follow the same every-stopping-point-is-an-alternative pattern.
//
// Many assumes p cannot succeed while consuming zero tokens; every use of
// it in this library satisfies that (each repeated parser consumes at least
// one rune), so the recursion below always makes progress.
func Many[T, R any](p Parser[T, R]) Parser[T, []R] {
	return func(input []T) iter.Iterator[Result[T, []R]] {
		zero := iter.NewUnitIterator(Result[T, []R]{nil, input})
		more := Bind(p, func(x R) Parser[T, []R] {
			return Map(Many(p), func(xs []R) []R {
				return append([]R{x}, xs...)
			})
		})(input)

		return iter.NewAppendIterator(more, zero)
	}
}

// Many1 matches one or more occurrences of p, with the same
// all-prefixes-are-alternatives behaviour as Many.
func Many1[T, R any](p Parser[T, R]) Parser[T, []R] {
	return Bind(p, func(x R) Parser[T, []R] {
		return Map(Many(p), func(xs []R) []R {
			return append([]R{x}, xs...)
		})
	})
}

// Combiner folds two values of R into one. ChainL1 and ChainR1 use a parser
// of Combiner, rather than of R directly, so that the operator occupying
// the gap between operands determines how they are folded together.
type Combiner[R any] func(left, right R) R

// ChainL1 parses `p (opP p)*`, left-associating the result: for operands
// x1 op1 x2 op2 x3, it builds op2(op1(x1,x2),x3). Like Many, every
// intermediate stopping point is a distinct alternative.
func ChainL1[T, R any](p Parser[T, R], opP Parser[T, Combiner[R]]) Parser[T, R] {
	return Bind(p, func(first R) Parser[T, R] {
		return chainLRest(first, p, opP)
	})
}

func chainLRest[T, R any](acc R, p Parser[T, R], opP Parser[T, Combiner[R]]) Parser[T, R] {
	return func(input []T) iter.Iterator[Result[T, R]] {
		stop := iter.NewUnitIterator(Result[T, R]{acc, input})
		cont := Bind(opP, func(combine Combiner[R]) Parser[T, R] {
			return Bind(p, func(next R) Parser[T, R] {
				return chainLRest(combine(acc, next), p, opP)
			})
		})(input)

		return iter.NewAppendIterator(cont, stop)
	}
}

// ChainR1 is the right-associative variant: for x1 op1 x2 op2 x3, it builds
// op1(x1, op2(x2,x3)).
func ChainR1[T, R any](p Parser[T, R], opP Parser[T, Combiner[R]]) Parser[T, R] {
	return Bind(p, func(first R) Parser[T, R] {
		return chainRRest(first, p, opP)
	})
}

func chainRRest[T, R any](left R, p Parser[T, R], opP Parser[T, Combiner[R]]) Parser[T, R] {
	return func(input []T) iter.Iterator[Result[T, R]] {
		stop := iter.NewUnitIterator(Result[T, R]{left, input})
		cont := Bind(opP, func(combine Combiner[R]) Parser[T, R] {
			return Bind(ChainR1(p, opP), func(right R) Parser[T, R] {
				return Return[T, R](combine(left, right))
			})
		})(input)

		return iter.NewAppendIterator(cont, stop)
	}
}
