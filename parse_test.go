package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSignature(t *testing.T) {
	cases := []struct {
		src  string
		args string
		body string
	}{
		{"(a,b){a+b}", "a,b", "a+b"},
		{"(){1}", "", "1"},
		{"  ( x ) { x } ", " x ", " x "},
		{"f(a){a}", "a", "a"},
		{"(a)\n{\n\ta\n}", "a", "\n\ta\n"},
		// The first brace and paren delimit, even when the body has more.
		{"(a){(a)}", "a", "(a)"},
		{"(a){a}}", "a", "a"},
	}
	for _, c := range cases {
		sig, err := splitSignature(c.src)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.args, sig.args, c.src)
		assert.Equal(t, c.body, sig.body, c.src)
		assert.Equal(t, c.args, c.src[sig.argsoff:sig.argsoff+len(sig.args)], c.src)
		assert.Equal(t, c.body, c.src[sig.bodyoff:sig.bodyoff+len(sig.body)], c.src)
	}
}

func TestSplitSignatureErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind ErrorKind
	}{
		{"", EmptySource},
		{" \n\t", EmptySource},
		{"a,b){a+b}", MalformedSignature},
		{"(a,b{a+b}", MalformedSignature},
		{")a,b({a+b}", MalformedSignature},
		{"(a,b)a+b}", MalformedSignature},
		{"(a,b){a+b", MalformedSignature},
		{"(a,b)}a+b{", MalformedSignature},
		{"a+b", MalformedSignature},
	}
	for _, c := range cases {
		_, err := splitSignature(c.src)
		assert.ErrorIs(t, err, c.kind, c.src)
	}
}

func TestArity(t *testing.T) {
	cases := map[string]int{
		"(){1}":            0,
		"(a){a}":           1,
		"(a, b){a+b}":      2,
		"(a,b,c){a+b}":     3,
		"( x_1 y_2 ){x_1}": 2,
	}
	for src, want := range cases {
		got, err := Arity(src)
		require.NoError(t, err, src)
		assert.Equal(t, want, got, src)
	}
	_, err := Arity("a){a}")
	assert.ErrorIs(t, err, MalformedSignature)
}

// seqcmp compares parsed sequences, including unexported fields.
var seqcmp = cmp.AllowUnexported(Node[float64]{})

func TestParse(t *testing.T) {
	lit := literal[float64]
	op := operator[float64]
	arg := argument[float64]
	grp := group[float64]
	cases := []struct {
		name  string
		src   string
		arity int
		want  []Node[float64]
	}{
		{"num", "(){1}", 0, []Node[float64]{lit(1)}},
		{"spaces", "(){   1   *   2   }", 0, []Node[float64]{lit(1), op('*'), lit(2)}},
		{"newlines", "(){\n1\n+\n2\n}", 0, []Node[float64]{lit(1), op('+'), lit(2)}},
		{"args", "(a,b){a+b}", 2, []Node[float64]{arg(0, "a"), op('+'), arg(1, "b")}},
		{"longnames", "(alpha, beta){beta/alpha}", 2, []Node[float64]{arg(1, "beta"), op('/'), arg(0, "alpha")}},
		{"signed", "(){1 - -2}", 0, []Node[float64]{lit(1), op('-'), lit(-2)}},
		{"signed-tight", "(){1--2}", 0, []Node[float64]{lit(1), op('-'), lit(-2)}},
		{"plus-sign", "(){+3*+.5}", 0, []Node[float64]{lit(3), op('*'), lit(0.5)}},
		{"exp", "(){1e3}", 0, []Node[float64]{lit(1000)}},
		{"group", "(){3*5-4+(1-2)}", 0, []Node[float64]{
			lit(3), op('*'), lit(5), op('-'), lit(4), op('+'), grp([]Node[float64]{lit(1), op('-'), lit(2)}),
		}},
		{"nested", "(x){((x))}", 1, []Node[float64]{
			grp([]Node[float64]{grp([]Node[float64]{arg(0, "x")})}),
		}},
		{"group-first", "(x){(x+1)*2}", 1, []Node[float64]{
			grp([]Node[float64]{arg(0, "x"), op('+'), lit(1)}), op('*'), lit(2),
		}},
		{"duplicate-names", "(a, a){a}", 2, []Node[float64]{arg(0, "a")}},
		{"first-match", "(a, ab){a}", 2, []Node[float64]{arg(0, "a")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Compile[float64](c.src, c.arity)
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, f.Body(), seqcmp); diff != "" {
				t.Errorf("wrong parse of %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		arity int
		kind  ErrorKind
		text  string
		col   int
	}{
		{"empty", "", 0, EmptySource, "", 1},
		{"no-open-paren", "a,b){a+b}", 2, MalformedSignature, "a,b){a+b}", 4},
		{"no-close-brace", "(a){a", 1, MalformedSignature, "(a){a", 4},
		{"too-many-args", "(a,b,c){a+b}", 2, ArityMismatch, "a,b,c", 2},
		{"too-few-args", "(a){a}", 2, ArityMismatch, "a", 2},
		{"unknown", "(a){a+bee}", 1, UnknownIdentifier, "bee", 7},
		{"first-match-shadows", "(a, ab){ab}", 2, ExpectedOperator, "b", 10},
		{"bad-number", "(){1+.}", 0, InvalidNumber, ".", 6},
		{"bad-sign", "(){--1}", 0, InvalidNumber, "--1", 4},
		{"overflow", "(){1e400}", 0, InvalidNumber, "1e400", 4},
		{"unexpected", "(){1+$}", 0, UnexpectedToken, "$", 6},
		{"unexpected-first", "(){*2}", 0, UnexpectedToken, "*2", 4},
		{"stray-close", "(){1)+2}", 0, UnexpectedToken, ")", 5},
		{"adjacent", "(){1 2}", 0, ExpectedOperator, "2", 6},
		{"adjacent-arg", "(a){a a}", 1, ExpectedOperator, "a", 7},
		{"adjacent-group", "(){2(3)}", 0, ExpectedOperator, "(", 5},
		{"empty-body", "(){}", 0, EmptyGroup, "", 4},
		{"blank-body", "(){  }", 0, EmptyGroup, "  ", 4},
		{"empty-group", "(){()}", 0, EmptyGroup, ")", 5},
		{"empty-nested", "(){1+(2*())}", 0, EmptyGroup, ")", 10},
		{"dangling", "(){1+}", 0, DanglingOperator, "1+", 4},
		{"dangling-group", "(){(1*)}", 0, DanglingOperator, "1*)", 5},
		{"unclosed", "(){(1+2}", 0, UnclosedGroup, "(1+2", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Compile[float64](c.src, c.arity)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, c.kind)
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, c.text, perr.Text)
			assert.Equal(t, c.col, perr.Pos())
		})
	}
}

func TestParseArityCounts(t *testing.T) {
	_, err := Compile[int]("(a,b,c){a+b}", 2)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Want)
	assert.Equal(t, 3, perr.Got)
	assert.Equal(t, "2: expected function to have 2 arguments, found 3", err.Error())
}

func TestParseIntLiteralStops(t *testing.T) {
	// An integer literal ends at the decimal point, which cannot be an
	// operator.
	_, err := Compile[int]("(){1.5}", 0)
	assert.ErrorIs(t, err, ExpectedOperator)
	_, err = Compile[uint]("(){-1}", 0)
	assert.ErrorIs(t, err, InvalidNumber)
	_, err = Compile[int8]("(){200}", 0)
	assert.ErrorIs(t, err, InvalidNumber)
}

func TestLongestMatch(t *testing.T) {
	f, err := Compile[int]("(a, ab){ab - a}", 2, LongestMatch())
	require.NoError(t, err)
	assert.Equal(t, 7, f.Call(3, 10))
}

func TestMaxDepth(t *testing.T) {
	deep := func(n int) string {
		return "(){" + strings.Repeat("(", n) + "1" + strings.Repeat(")", n) + "}"
	}
	_, err := Compile[float64](deep(DefaultMaxDepth), 0)
	assert.NoError(t, err)
	_, err = Compile[float64](deep(DefaultMaxDepth+1), 0)
	assert.ErrorIs(t, err, TooDeep)

	_, err = Compile[float64](deep(3), 0, MaxDepth(3))
	assert.NoError(t, err)
	_, err = Compile[float64](deep(4), 0, MaxDepth(3))
	assert.ErrorIs(t, err, TooDeep)

	// Far past the limit still fails cleanly.
	_, err = Compile[float64](deep(1_000_000), 0)
	assert.ErrorIs(t, err, TooDeep)

	assert.Panics(t, func() { MaxDepth(0) })
}

func TestParsingPreset(t *testing.T) {
	preset := ParsingPreset(MaxDepth(2), LongestMatch())
	f, err := Compile[int]("(a, ab){((ab))}", 2, preset)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Call(1, 5))
	_, err = Compile[int]("(a, ab){(((ab)))}", 2, preset)
	assert.ErrorIs(t, err, TooDeep)
	// Options after a preset are fine.
	_, err = Compile[int]("(a, ab){(((ab)))}", 2, preset, MaxDepth(3))
	assert.NoError(t, err)
	// Presets after options are not.
	assert.Panics(t, func() { Compile[int]("(){1}", 0, MaxDepth(3), preset) })
}

func TestNegativeArityPanics(t *testing.T) {
	assert.Panics(t, func() { Compile[int]("(){1}", -1) })
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() { MustCompile[int]("(){1}", 0) })
	assert.Panics(t, func() { MustCompile[int]("(){1+}", 0) })
}

func TestStringRoundTrip(t *testing.T) {
	cases := []struct {
		src   string
		arity int
		want  string
	}{
		{"(a,b){a+b}", 2, "(a, b){a + b}"},
		{"(){3*5-4+(1-2)}", 0, "(){3 * 5 - 4 + (1 - 2)}"},
		{"(x){x*-2.5e-3}", 1, "(x){x * -0.0025}"},
		{"(x){((x))/1e21}", 1, "(x){((x)) / 1e+21}"},
	}
	for _, c := range cases {
		f := MustCompile[float64](c.src, c.arity)
		assert.Equal(t, c.want, f.String())
		g, err := Compile[float64](f.String(), c.arity)
		require.NoError(t, err, f.String())
		if diff := cmp.Diff(f.Body(), g.Body(), seqcmp); diff != "" {
			t.Errorf("%q does not round trip (-orig +reparsed):\n%s", c.src, diff)
		}
	}
}
