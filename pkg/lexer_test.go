package crho

import (
	"errors"
	"strings"
	"testing"

	"github.com/sestinj/crho/internal/test"
	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	cases := []struct {
		data   string
		expect []Token
	}{
		{
			"func add (a, b)",
			[]Token{
				{Typ: TokenFunc, Lexeme: "func"},
				{Typ: TokenIdentifier, Lexeme: "add"},
				{Typ: TokenChar, Lexeme: "("},
				{Typ: TokenIdentifier, Lexeme: "a"},
				{Typ: TokenChar, Lexeme: ","},
				{Typ: TokenIdentifier, Lexeme: "b"},
				{Typ: TokenChar, Lexeme: ")"},
			},
		},
		{
			// Keywords are exact matches only
			"import importer funcx func",
			[]Token{
				{Typ: TokenImport, Lexeme: "import"},
				{Typ: TokenIdentifier, Lexeme: "importer"},
				{Typ: TokenIdentifier, Lexeme: "funcx"},
				{Typ: TokenFunc, Lexeme: "func"},
			},
		},
		{
			"42 3.14 .5",
			[]Token{
				{Typ: TokenNumber, Lexeme: "42", Num: 42},
				{Typ: TokenNumber, Lexeme: "3.14", Num: 3.14},
				{Typ: TokenNumber, Lexeme: ".5", Num: 0.5},
			},
		},
		{
			// The scanner accepts the whole run; the value stops at the
			// second dot, like strtod
			"1.2.3",
			[]Token{
				{Typ: TokenNumber, Lexeme: "1.2.3", Num: 1.2},
			},
		},
		{
			".",
			[]Token{
				{Typ: TokenNumber, Lexeme: ".", Num: 0},
			},
		},
		{
			"42abc",
			[]Token{
				{Typ: TokenNumber, Lexeme: "42", Num: 42},
				{Typ: TokenIdentifier, Lexeme: "abc"},
			},
		},
		{
			"# this is a comment",
			nil,
		},
		{
			"# a note\n42",
			[]Token{
				{Typ: TokenNumber, Lexeme: "42", Num: 42},
			},
		},
		{
			"# a note\r42",
			[]Token{
				{Typ: TokenNumber, Lexeme: "42", Num: 42},
			},
		},
		{
			"a+b*c<d",
			[]Token{
				{Typ: TokenIdentifier, Lexeme: "a"},
				{Typ: TokenChar, Lexeme: "+"},
				{Typ: TokenIdentifier, Lexeme: "b"},
				{Typ: TokenChar, Lexeme: "*"},
				{Typ: TokenIdentifier, Lexeme: "c"},
				{Typ: TokenChar, Lexeme: "<"},
				{Typ: TokenIdentifier, Lexeme: "d"},
			},
		},
		{
			"a @ b",
			[]Token{
				{Typ: TokenIdentifier, Lexeme: "a"},
				{Typ: TokenChar, Lexeme: "@"},
				{Typ: TokenIdentifier, Lexeme: "b"},
			},
		},
		{
			// Identifiers are ASCII; anything else falls through as a
			// plain character token
			"añejo",
			[]Token{
				{Typ: TokenIdentifier, Lexeme: "a"},
				{Typ: TokenChar, Lexeme: "ñ"},
				{Typ: TokenIdentifier, Lexeme: "ejo"},
			},
		},
		{
			"1;2",
			[]Token{
				{Typ: TokenNumber, Lexeme: "1", Num: 1},
				{Typ: TokenChar, Lexeme: ";"},
				{Typ: TokenNumber, Lexeme: "2", Num: 2},
			},
		},
		{
			"",
			nil,
		},
	}

	for _, c := range cases {
		l := NewLexer("test.crho", strings.NewReader(c.data))

		toks, err := l.Tokenize()
		assert.NoError(t, err)
		assert.Equal(t, c.expect, stripLocations(toks))
	}
}

// stripLocations zeroes token positions so cases can focus on kinds and
// text. Positions get their own test.
func stripLocations(toks []Token) []Token {
	for i := range toks {
		toks[i].Loc = Location{}
	}
	return toks
}

func TestLexerLocations(t *testing.T) {
	src := "func f(a, b)\n  a + b\n"
	l := NewLexer("loc.crho", strings.NewReader(src))

	toks, err := l.Tokenize()
	assert.NoError(t, err)

	var locs []Location
	for _, tok := range toks {
		locs = append(locs, tok.Loc)
	}

	expect := []Location{
		{File: "loc.crho", Line: 1, Col: 1},  // func
		{File: "loc.crho", Line: 1, Col: 6},  // f
		{File: "loc.crho", Line: 1, Col: 7},  // (
		{File: "loc.crho", Line: 1, Col: 8},  // a
		{File: "loc.crho", Line: 1, Col: 9},  // ,
		{File: "loc.crho", Line: 1, Col: 11}, // b
		{File: "loc.crho", Line: 1, Col: 12}, // )
		{File: "loc.crho", Line: 2, Col: 3},  // a
		{File: "loc.crho", Line: 2, Col: 5},  // +
		{File: "loc.crho", Line: 2, Col: 7},  // b
	}
	assert.Equal(t, expect, locs)
}

func TestLexerStickyEOF(t *testing.T) {
	l := NewLexer("test.crho", strings.NewReader("1"))

	assert.Equal(t, TokenNumber, l.Next().Typ)
	assert.Equal(t, TokenEOF, l.Next().Typ)
	assert.Equal(t, TokenEOF, l.Next().Typ)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestLexerReadError(t *testing.T) {
	l := NewLexer("test.crho", failingReader{})

	toks, err := l.Tokenize()
	assert.Empty(t, toks)
	assert.EqualError(t, err, "device gone")
	assert.Equal(t, TokenEOF, l.Next().Typ)
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomTokens(size)
		l := NewLexer("bench.crho", strings.NewReader(data))

		var err error
		b.StartTimer()

		benchResult, err = l.Tokenize()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer100(b *testing.B) {
	benchmarkLexer(100, b)
}

func BenchmarkLexer1000(b *testing.B) {
	benchmarkLexer(1000, b)
}

func BenchmarkLexer10000(b *testing.B) {
	benchmarkLexer(10000, b)
}

func BenchmarkLexer100000(b *testing.B) {
	benchmarkLexer(100000, b)
}

func BenchmarkLexer1000000(b *testing.B) {
	benchmarkLexer(1000000, b)
}
