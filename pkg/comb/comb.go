// Package comb implements the nondeterministic parser combinator kernel
// (component A of the mixfix parser): a small library of combinators over
// an arbitrary token stream which returns *all* successful parses rather
// than committing to the first one.
//
// This "list of successes" semantics, here realised as a lazily-produced
// iter.Iterator rather than an eagerly-built slice, is what lets the mixfix
// driver (pkg/mixfix) distinguish "no parse" from "exactly one parse" from
// "ambiguous parse" instead of silently picking a branch the way a
// deterministic PEG parser would.
//
// The kernel is instantiated twice: once over runes for the raw reader
// (pkg/raw), and once over pkg/raw.Raw tokens for the mixfix expression
// parser (pkg/mixfix).
package comb

import "github.com/mixfixgo/mixfix/pkg/iter"

// Result pairs a parsed value with whatever of the input stream is left
// over after parsing it.
type Result[T, R any] struct {
	Value     R
	Remaining []T
}

// Parser is a nondeterministic parser over a stream of tokens of type T,
// producing results of type R. Calling it does not consume anything itself
// -- it returns an iterator over every way the parse could have gone,
// each paired with what remains of the input after that parse.
type Parser[T, R any] func(input []T) iter.Iterator[Result[T, R]]

// Return always succeeds with x, consuming nothing.
func Return[T, R any](x R) Parser[T, R] {
	return func(input []T) iter.Iterator[Result[T, R]] {
		return iter.NewUnitIterator(Result[T, R]{x, input})
	}
}

// Fail never succeeds.
func Fail[T, R any]() Parser[T, R] {
	return func(input []T) iter.Iterator[Result[T, R]] {
		return iter.Empty[Result[T, R]]()
	}
}

// Bind runs p, then for each (x, rest) it produces, runs f(x) on rest. The
// result is the union of every parse reachable this way.
func Bind[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return func(input []T) iter.Iterator[Result[T, B]] {
		return iter.NewFlattenIterator(p(input), func(r Result[T, A]) iter.Iterator[Result[T, B]] {
			return f(r.Value)(r.Remaining)
		})
	}
}

// Map transforms every successful result of p by f. It is Bind specialised
// to a pure (non-parsing) continuation.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return Bind(p, func(a A) Parser[T, B] {
		return Return[T, B](f(a))
	})
}

// Seq2 runs p then q, pairing up their results. Bind already gives this for
// free, but spelling it out reads better at call sites that just want two
// things in sequence rather than a continuation.
func Seq2[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, Pair[A, B]] {
	return Bind(p, func(a A) Parser[T, Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] {
			return Pair[A, B]{a, b}
		})
	})
}

// Pair is the plain two-element tuple used by Seq2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Alt is the union of the result sets of p and q on the same input: it is
// symmetric and preserves ambiguity (neither side is tried "first" in any
// sense that is observable by a caller who keeps enumerating results).
func Alt[T, R any](p, q Parser[T, R]) Parser[T, R] {
	return func(input []T) iter.Iterator[Result[T, R]] {
		return iter.NewAppendIterator(p(input), q(input))
	}
}

// Choice is the n-ary generalisation of Alt.
func Choice[T, R any](ps ...Parser[T, R]) Parser[T, R] {
	result := Fail[T, R]()
	for _, p := range ps {
		result = Alt(result, p)
	}

	return result
}

// Sat consumes exactly one token, provided it satisfies pred.
func Sat[T any](pred func(T) bool) Parser[T, T] {
	return func(input []T) iter.Iterator[Result[T, T]] {
		if len(input) > 0 && pred(input[0]) {
			return iter.NewUnitIterator(Result[T, T]{input[0], input[1:]})
		}

		return iter.Empty[Result[T, T]]()
	}
}

// Parse runs p over input and returns only those results which consumed
// the entire input. Use iter.TakeUpTo on the result to cheaply determine
// whether there were zero, one, or several whole-input parses without
// enumerating a pathological grammar's full, possibly exponential, result
// set.
func Parse[T, R any](p Parser[T, R], input []T) iter.Iterator[R] {
	complete := iter.NewFilterIterator(p(input), func(r Result[T, R]) bool {
		return len(r.Remaining) == 0
	})

	return iter.NewProjectIterator(complete, func(r Result[T, R]) R {
		return r.Value
	})
}
