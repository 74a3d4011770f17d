package polysolve

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		// err is whether scanning ends with an error after tokens.
		err bool
	}{
		{"", nil, false},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1, num: 0}}, false},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1, num: 9876543210}}, false},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1, num: 1.5}}, false},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1, num: 0.5}}, false},
		{"1e2", []lexToken{{text: "1e2", kind: tokenNum, pos: 1, num: 100}}, false},
		{"1e+2", []lexToken{{text: "1e+2", kind: tokenNum, pos: 1, num: 100}}, false},
		{"1E-2", []lexToken{{text: "1E-2", kind: tokenNum, pos: 1, num: 0.01}}, false},
		{"2i", []lexToken{{text: "2i", kind: tokenNum, pos: 1, num: 2i}}, false},
		{"2.5e1i", []lexToken{{text: "2.5e1i", kind: tokenNum, pos: 1, num: 25i}}, false},
		{"1e", []lexToken{{text: "1", kind: tokenNum, pos: 1, num: 1}, {text: "e", kind: tokenPoly, pos: 2}}, false},
		{"1e+", []lexToken{{text: "1", kind: tokenNum, pos: 1, num: 1}, {text: "e", kind: tokenPoly, pos: 2}, {text: "+", kind: tokenOp, pos: 3}}, false},
		{"1a", []lexToken{{text: "1", kind: tokenNum, pos: 1, num: 1}, {text: "a", kind: tokenPoly, pos: 2}}, false},
		{"1.2.3", nil, true},
		{".", nil, true},
		{"1.", nil, true},
		{"1e999", nil, true},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2, num: 1}}, false},
		// letters
		{"i", []lexToken{{text: "i", kind: tokenPoly, pos: 1}}, false},
		{"xY", []lexToken{{text: "x", kind: tokenPoly, pos: 1}, {text: "Y", kind: tokenVar, pos: 2}}, false},
		// operators and brackets
		{"+-*/^", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "^", kind: tokenOp, pos: 5},
		}, false},
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, false},
		// erroneous symbols
		{"$", nil, true},
		{"x$", []lexToken{{text: "x", kind: tokenPoly, pos: 1}}, true},
		{"π", nil, true},
		{"[", nil, true},
	}
	for _, c := range cases {
		scan := lex(c.src, 0)
		for _, want := range c.tokens {
			got, err := scan.next()
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", c.src, err)
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		got, err := scan.next()
		switch {
		case c.err && err == nil:
			t.Errorf("scanning %q: expected error, got %v", c.src, got)
		case c.err:
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Errorf("scanning %q: error %#v is not a *LexError", c.src, err)
			}
		case err != nil:
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
		case got.kind != tokenEOF:
			t.Errorf("scanning %q: extra token %v", c.src, got)
		}
	}
}

func TestLexBase(t *testing.T) {
	scan := lex("x+1", 5)
	want := []int{6, 7, 8, 9}
	for _, pos := range want {
		tok, err := scan.next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.pos != pos {
			t.Errorf("%v should be at %d", tok, pos)
		}
	}
}

func TestLexPush(t *testing.T) {
	scan := lex("x", 0)
	tok, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	scan.push(tok)
	if got := scan.must(); got != tok {
		t.Errorf("must returned %v after pushing %v", got, tok)
	}
	defer func() {
		if recover() == nil {
			t.Error("must without push did not panic")
		}
	}()
	scan.must()
}

func TestCompact(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{" \t\r\n", ""},
		{"let A = x ^ 2", "letA=x^2"},
		{"1 2", "12"},
		{"x + 1", "x+1"},
	}
	for _, c := range cases {
		if got := Compact(c.in); got != c.want {
			t.Errorf("Compact(%q): want %q, got %q", c.in, c.want, got)
		}
	}
}
