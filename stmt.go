package polysolve

import (
	"strconv"
	"strings"
)

// StmtKind is the kind of a statement.
type StmtKind int8

const (
	// StmtExpr is a bare expression to evaluate and display.
	StmtExpr StmtKind = iota
	// StmtLet assigns the value of an expression to a variable.
	StmtLet
	// StmtSolve finds the roots of the value of an expression.
	StmtSolve
)

func (k StmtKind) String() string {
	switch k {
	case StmtExpr:
		return "expr"
	case StmtLet:
		return "let"
	case StmtSolve:
		return "solve"
	default:
		return "StmtKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Statement is a parsed statement.
type Statement struct {
	Kind StmtKind
	// Var is the variable assigned by a let statement.
	Var byte
	// Expr is the statement's expression.
	Expr *Expr
}

// ParseStatement parses one of
//
//	let <A-Z> = expr
//	solve expr
//	expr
//
// Keywords are recognized after whitespace is removed, so "solvex^2-1" is
// the same as "solve x^2 - 1". No expression can begin with either keyword.
func ParseStatement(src string, opts ...ParseOption) (*Statement, error) {
	p := newParsectx(opts)
	src = Compact(src)
	switch {
	case strings.HasPrefix(src, "let"):
		// let A = ...
		// 123456
		if len(src) < 4 || !IsVarName(src[3]) {
			return nil, &StatementError{Col: 4, Msg: "let requires a variable name A-Z"}
		}
		if len(src) < 5 || src[4] != '=' {
			return nil, &StatementError{Col: 5, Msg: `expected "=" after let ` + src[3:4]}
		}
		ex, err := p.parse(src[5:], 5)
		if err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtLet, Var: src[3], Expr: ex}, nil
	case strings.HasPrefix(src, "solve"):
		ex, err := p.parse(src[5:], 5)
		if err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtSolve, Expr: ex}, nil
	default:
		ex, err := p.parse(src, 0)
		if err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtExpr, Expr: ex}, nil
	}
}

func (s *Statement) String() string {
	switch s.Kind {
	case StmtLet:
		return "let " + string(s.Var) + " = " + s.Expr.String()
	case StmtSolve:
		return "solve " + s.Expr.String()
	default:
		return s.Expr.String()
	}
}
