package crho

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenFunc
	TokenImport
	TokenIdentifier
	TokenNumber
	TokenChar
)

var keywordTable = map[string]TokenType{
	"func":   TokenFunc,
	"import": TokenImport,
}

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenFunc:
		return "FUNC"
	case TokenImport:
		return "IMPORT"
	case TokenIdentifier:
		return "IDENT"
	case TokenNumber:
		return "NUMBER"
	case TokenChar:
		return "CHAR"
	default:
		return "UNKNOWN"
	}
}

// Location is a 1-based source position.
type Location struct {
	File      string
	Line, Col int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

type Token struct {
	Typ    TokenType
	Lexeme string
	Num    float64 // set for TokenNumber only
	Loc    Location
}

// Char returns the character of a TokenChar token, and 0 for every other
// kind. Looking up 0 in a precedence table always misses, so non-operator
// tokens fall through to the sentinel without a separate check.
func (t Token) Char() rune {
	if t.Typ != TokenChar || t.Lexeme == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.Lexeme)
	return r
}

func (t Token) String() string {
	switch t.Typ {
	case TokenEOF:
		return "end of input"
	case TokenFunc, TokenImport:
		return fmt.Sprintf("keyword %q", t.Lexeme)
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case TokenNumber:
		return fmt.Sprintf("number %s", t.Lexeme)
	default:
		return fmt.Sprintf("%q", t.Lexeme)
	}
}

// Lexer turns a character stream into tokens, one per call to Next. All
// state lives on the instance, so independent inputs get independent
// lexers; a single Lexer must not be shared between goroutines.
type Lexer struct {
	reader *bufio.Reader
	ch     rune // lookahead character
	eof    bool
	err    error
	pos    Location
}

func NewLexer(name string, reader io.Reader) *Lexer {
	l := &Lexer{
		reader: bufio.NewReader(reader),
		pos:    Location{File: name, Line: 1, Col: 1},
	}
	l.read()
	return l
}

// Next returns the next token. After the input is exhausted it keeps
// returning TokenEOF.
func (l *Lexer) Next() Token {
	for {
		for !l.eof && unicode.IsSpace(l.ch) {
			l.advance()
		}
		if l.eof {
			return Token{Typ: TokenEOF, Loc: l.pos}
		}
		if l.ch != '#' {
			break
		}
		// Comment: discard through end of line, emit nothing
		for !l.eof && l.ch != '\n' && l.ch != '\r' {
			l.advance()
		}
	}

	loc := l.pos
	switch {
	case isLetter(l.ch):
		word := l.readWhile(isAlnum)
		if kind, ok := keywordTable[word]; ok {
			return Token{Typ: kind, Lexeme: word, Loc: loc}
		}
		return Token{Typ: TokenIdentifier, Lexeme: word, Loc: loc}
	case isDigit(l.ch) || l.ch == '.':
		lit := l.readWhile(func(ch rune) bool { return isDigit(ch) || ch == '.' })
		return Token{Typ: TokenNumber, Lexeme: lit, Num: parseNumber(lit), Loc: loc}
	default:
		ch := l.ch
		l.advance()
		// Anything else is passed through verbatim; the parser and its
		// precedence table decide what counts as an operator.
		return Token{Typ: TokenChar, Lexeme: string(ch), Loc: loc}
	}
}

// Tokenize drains the input and returns every token before the EOF
// sentinel, plus any read error encountered along the way.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.Next()
		if tok.Typ == TokenEOF {
			return tokens, l.err
		}
		tokens = append(tokens, tok)
	}
}

// Err reports the first non-EOF read error, if any. A failing reader
// behaves like end of input as far as tokens are concerned.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) readWhile(pred func(rune) bool) string {
	var out []rune
	for !l.eof && pred(l.ch) {
		out = append(out, l.ch)
		l.advance()
	}
	return string(out)
}

func (l *Lexer) advance() {
	if l.eof {
		return
	}
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	} else {
		l.pos.Col++
	}
	l.read()
}

func (l *Lexer) read() {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF && l.err == nil {
			l.err = err
		}
		l.eof = true
		l.ch = 0
		return
	}
	l.ch = r
}

// parseNumber converts a digits-and-dots run the way strtod would: the
// longest leading prefix that still parses, zero if nothing does. The
// scanner deliberately accepts runs like "1.2.3"; the extra dots are the
// parser's problem only insofar as the value stops at the second one.
func parseNumber(lit string) float64 {
	if val, err := strconv.ParseFloat(lit, 64); err == nil {
		return val
	}
	cut := len(lit)
	dotted := false
	for i, ch := range lit {
		if ch != '.' {
			continue
		}
		if dotted {
			cut = i
			break
		}
		dotted = true
	}
	val, err := strconv.ParseFloat(lit[:cut], 64)
	if err != nil {
		return 0
	}
	return val
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isAlnum(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}
