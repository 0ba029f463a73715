package raw

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/mixfixgo/mixfix/pkg/source"
	"github.com/mixfixgo/mixfix/pkg/util/assert"
)

func lit(n int64) Raw { return &Lit{big.NewInt(n)} }
func name(s string) Raw { return &Name{s} }

func TestRawReader_00(t *testing.T) {
	checkParse(t, "x", name("x"))
}

func TestRawReader_01(t *testing.T) {
	checkParse(t, "123", lit(123))
}

func TestRawReader_02(t *testing.T) {
	checkParse(t, "x y", NewApp([]Raw{name("x"), name("y")}))
}

func TestRawReader_03(t *testing.T) {
	checkParse(t, "x y z", NewApp([]Raw{name("x"), name("y"), name("z")}))
}

func TestRawReader_04(t *testing.T) {
	checkParse(t, "(x)", &Paren{name("x")})
}

func TestRawReader_05(t *testing.T) {
	checkParse(t, "{x}", &Braces{name("x")})
}

func TestRawReader_06(t *testing.T) {
	checkParse(t, "f {x} y", NewApp([]Raw{name("f"), &Braces{name("x")}, name("y")}))
}

func TestRawReader_07(t *testing.T) {
	checkParse(t, "(x y)", &Paren{NewApp([]Raw{name("x"), name("y")})})
}

func TestRawReader_08(t *testing.T) {
	checkParse(t, "  x   y  ", NewApp([]Raw{name("x"), name("y")}))
}

func TestRawReader_09(t *testing.T) {
	checkParseFails(t, "123abc")
}

func TestRawReader_10(t *testing.T) {
	checkParseFails(t, "(x")
}

func TestRawReader_11(t *testing.T) {
	checkParseFails(t, "")
}

func TestRawReader_12(t *testing.T) {
	checkParseFails(t, "x (y")
}

func TestRawReader_13_ParseFileRecordsSpans(t *testing.T) {
	r, m, _, err := ParseFile("t", "f  {x} y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app, ok := r.(*App)
	if !ok || len(app.Children) != 3 {
		t.Fatalf("expected a 3-child App, got %#v", r)
	}

	if !m.Has(r) {
		t.Fatalf("expected the top-level node to be registered in the source map")
	}

	fn, braces, arg := app.Children[0], app.Children[1], app.Children[2]

	if got, want := m.Get(fn), source.NewSpan(0, 1); got != want {
		t.Errorf("Name %q span = %v, want %v", fn, got, want)
	}

	if got, want := m.Get(braces), source.NewSpan(3, 6); got != want {
		t.Errorf("Braces span = %v, want %v", got, want)
	}

	if got, want := m.Get(arg), source.NewSpan(7, 8); got != want {
		t.Errorf("Name %q span = %v, want %v", arg, got, want)
	}
}

func TestRawReader_14_ParseFileReportsError(t *testing.T) {
	if _, _, _, err := ParseFile("t", "123abc"); err == nil {
		t.Fatalf("expected an error")
	}
}

// ==================================================================
// Framework
// ==================================================================

func checkParse(t *testing.T, input string, expected Raw) {
	actual, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", input, err)
	}

	assert.Equal(t, expected.String(), actual.String())
}

func checkParseFails(t *testing.T, input string) {
	if r, err := Parse(input); err == nil {
		t.Fatalf("expected error parsing %q, got %v", input, r)
	}
}

// ==================================================================
// Properties
// ==================================================================

// genRaw builds arbitrary well-formed Raw trees, biased small so generated
// application spines terminate.
func genRaw(depth int) gopter.Gen {
	atoms := gen.OneGenOf(
		gen.RegexMatch(`[a-zA-Z][a-zA-Z0-9]{0,4}`).Map(func(s string) Raw { return name(s) }),
		gen.IntRange(0, 1_000_000).Map(func(n int) Raw { return lit(int64(n)) }),
	)

	if depth <= 0 {
		return atoms
	}

	sub := genRaw(depth - 1)

	return gen.OneGenOf(
		atoms,
		sub.Map(func(r Raw) Raw { return &Paren{r} }),
		sub.Map(func(r Raw) Raw { return &Braces{r} }),
		gen.SliceOfN(2, sub).Map(func(rs []Raw) Raw { return NewApp(rs) }),
	)
}

// TestRawRoundTrip checks parseRaw(show(r)) == r for generated trees,
// invariant 1 of the library's testable properties: rendering a Raw tree
// and reading it back must reproduce the same tree.
func TestRawRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("parseRaw(show(r)) == r", prop.ForAll(
		func(r Raw) bool {
			shown := r.String()

			parsed, err := Parse(shown)
			if err != nil {
				return false
			}

			return parsed.String() == shown
		},
		genRaw(3),
	))

	properties.TestingRun(t)
}
