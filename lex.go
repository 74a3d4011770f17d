package polysolve

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// num is the value of a tokenNum.
	num complex128
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a real or imaginary number.
	tokenNum
	// tokenPoly is a lowercase letter naming a polynomial indeterminate.
	tokenPoly
	// tokenVar is an uppercase letter naming a variable.
	tokenVar
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

var tokenNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenPoly:  "Poly",
	tokenVar:   "Var",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/^"

// Compact removes all whitespace from src. Parsing operates on the compacted
// source, and error positions count runes of the compacted source.
func Compact(src string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
}

// lexer scans tokens from a compacted source. Every token is a single ASCII
// character except numbers, so byte offsets double as rune positions for
// everything the lexer accepts.
type lexer struct {
	src string
	off int
	// base is added to positions, for sources that are suffixes of a larger
	// compacted input.
	base int
	p    lexToken
}

func lex(src string, base int) *lexer {
	return &lexer{src: src, base: base}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("polysolve: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("polysolve: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// next scans the next token from the input. Once the input is exhausted,
// every call returns an EOF token.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	tok := lexToken{pos: l.base + l.off + 1}
	if l.off >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	c := l.src[l.off]
	switch {
	case '0' <= c && c <= '9', c == '.':
		return l.scanNum(tok)
	case 'a' <= c && c <= 'z':
		tok.kind = tokenPoly
	case 'A' <= c && c <= 'Z':
		tok.kind = tokenVar
	case c == '(':
		tok.kind = tokenOpen
	case c == ')':
		tok.kind = tokenClose
	case strings.IndexByte(Operators, c) >= 0:
		tok.kind = tokenOp
	default:
		// Report the whole rune so that it shows up in the error message.
		_, sz := utf8.DecodeRuneInString(l.src[l.off:])
		return tok, l.error(l.src[l.off:l.off+sz], "", tok.pos)
	}
	tok.text = l.src[l.off : l.off+1]
	l.off++
	return tok, nil
}

// scanNum scans a number: digits with an optional fraction and exponent, and
// an optional i suffix marking it imaginary. A point must be followed by
// digits. An exponent marker not followed by digits is not part of the number.
func (l *lexer) scanNum(tok lexToken) (lexToken, error) {
	start := l.off
	// The caller has seen a digit or a point, so "." alone fails here.
	l.digits()
	if l.peek(0) == '.' {
		l.off++
		if !l.digits() {
			return tok, l.error(l.src[start:l.off], "number", tok.pos)
		}
	}
	if e := l.peek(0); e == 'e' || e == 'E' {
		k := 1
		if s := l.peek(1); s == '+' || s == '-' {
			k = 2
		}
		if d := l.peek(k); '0' <= d && d <= '9' {
			l.off += k
			l.digits()
		}
	}
	text := l.src[start:l.off]
	if c := l.peek(0); c == '.' || '0' <= c && c <= '9' {
		return tok, l.error(l.src[start:l.off+1], "number", tok.pos)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return tok, l.error(text, "number", tok.pos)
	}
	tok.num = complex(f, 0)
	if l.peek(0) == 'i' {
		l.off++
		tok.num = complex(0, f)
	}
	tok.text = l.src[start:l.off]
	tok.kind = tokenNum
	return tok, nil
}

// digits consumes a run of decimal digits and reports whether there were any.
func (l *lexer) digits() bool {
	start := l.off
	for l.off < len(l.src) && '0' <= l.src[l.off] && l.src[l.off] <= '9' {
		l.off++
	}
	return l.off > start
}

// peek returns the byte k positions past the current one, or 0 past the end.
func (l *lexer) peek(k int) byte {
	if l.off+k >= len(l.src) {
		return 0
	}
	return l.src[l.off+k]
}

func (l *lexer) error(text, kind string, col int) error {
	return &LexError{
		Text: text,
		Kind: kind,
		Col:  col,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid character was
	// encountered, including that character.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the position of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
