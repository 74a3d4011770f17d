package polysolve_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zephyrtronium/polysolve"
)

func TestParseStatement(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind polysolve.StmtKind
		v    byte
		vars []string
	}{
		{"expr", "x + 1", polysolve.StmtExpr, 0, nil},
		{"let", "let A = x + B", polysolve.StmtLet, 'A', []string{"B"}},
		{"let-compact", "letZ=2", polysolve.StmtLet, 'Z', nil},
		{"let-spaced", " l e t  B  =  3 ", polysolve.StmtLet, 'B', nil},
		{"let-self", "let A = A + 1", polysolve.StmtLet, 'A', []string{"A"}},
		{"solve", "solve x^2 - 1", polysolve.StmtSolve, 0, nil},
		{"solve-compact", "solvex", polysolve.StmtSolve, 0, nil},
		{"solve-var", "solve A", polysolve.StmtSolve, 0, []string{"A"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := polysolve.ParseStatement(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if s.Kind != c.kind {
				t.Errorf("%q: want kind %v, got %v", c.src, c.kind, s.Kind)
			}
			if s.Var != c.v {
				t.Errorf("%q: want var %q, got %q", c.src, c.v, s.Var)
			}
			if v := s.Expr.Vars(); len(v) != 0 || len(c.vars) != 0 {
				if !reflect.DeepEqual(v, c.vars) {
					t.Errorf("%q: want vars %q, got %q", c.src, c.vars, v)
				}
			}
		})
	}
}

func TestStatementString(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"x + 1", "((x) + (1))"},
		{"let A = x + 1", "let A = ((x) + (1))"},
		{"letZ=2", "let Z = (2)"},
		{"solve x - 1", "solve ((x) - (1))"},
	}
	for _, c := range cases {
		s, err := polysolve.ParseStatement(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if got := s.String(); got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestParseStatementErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		pos  int
	}{
		{"let-novar", "let", new(polysolve.StatementError), 4},
		{"let-lower", "let a = 1", new(polysolve.StatementError), 4},
		{"let-noeq", "let A 1", new(polysolve.StatementError), 5},
		{"let-noexpr", "let A =", new(polysolve.EmptyExpressionError), 6},
		{"let-badexpr", "let A = 1 +", new(polysolve.EmptyExpressionError), 8},
		{"let-twice", "let A = B = 1", new(polysolve.LexError), 7},
		{"solve-noexpr", "solve", new(polysolve.EmptyExpressionError), 6},
		{"solve-lexer", "solve x $", new(polysolve.LexError), 7},
		{"expr-bracket", "(x", new(polysolve.BracketError), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := polysolve.ParseStatement(c.src)
			if s != nil {
				t.Errorf("%q parsed to %v", c.src, s)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("wrong error type from %q: want %T, got %T (%v)", c.src, c.err, err, err)
			}
			var ie polysolve.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%v is not an InputError", err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q: error %q at %d, want %d", c.src, err, ie.Pos(), c.pos)
			}
		})
	}
}

func TestParseStatementLength(t *testing.T) {
	// The keyword counts toward the limit.
	src := "solve x"
	if _, err := polysolve.ParseStatement(src, polysolve.MaxLength(6)); err != nil {
		t.Errorf("%q failed within limit 6: %v", src, err)
	}
	_, err := polysolve.ParseStatement(src, polysolve.MaxLength(5))
	var le *polysolve.LengthError
	if !errors.As(err, &le) || le.Len != 6 {
		t.Errorf("%q: want length error for 6 runes, got %v", src, err)
	}
}
