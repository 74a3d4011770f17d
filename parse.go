package polysolve

import (
	"strings"
	"unicode/utf8"
)

// term    = factor { ('+' | '-') factor }
// factor  = unary { ('*' | '/') unary }
// unary   = { '-' } call
// call    = power { '(' term ')' }
// power   = primary [ '^' { '-' } power ]
// primary = num | poly | var | '(' term ')'
//
// With LeftAssociativePower, power = primary { '^' { '-' } primary }.

// Expr is a parsed expression that can be evaluated with an environment.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses an expression so it can be evaluated with an environment.
// Whitespace is removed from src before parsing, so error positions count
// runes of the compacted source. The given options are applied in order.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := newParsectx(opts)
	return p.parse(Compact(src), 0)
}

// parse parses a compacted source which begins base runes into the full
// input.
func (p *parsectx) parse(src string, base int) (*Expr, error) {
	if p.maxlen > 0 {
		if n := base + utf8.RuneCountInString(src); n > p.maxlen {
			return nil, &LengthError{Len: n, Max: p.maxlen}
		}
	}
	scan := lex(src, base)
	n, err := p.term(scan)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Want: "operator or end of expression"}
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, string(k))
	}
	sortstrs(ex.names)
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Each parsing rule below returns with the first token it did not consume
// pushed back onto the lexer.

type rule func(p *parsectx, scan *lexer) (*node, error)

func (p *parsectx) term(scan *lexer) (*node, error) {
	return p.binary(scan, "+-", (*parsectx).factor)
}

func (p *parsectx) factor(scan *lexer) (*node, error) {
	return p.binary(scan, "*/", (*parsectx).unary)
}

func (p *parsectx) unary(scan *lexer) (*node, error) {
	return p.negated(scan, (*parsectx).call)
}

// binary parses operands joined by any of the operators in ops, folding them
// to the left.
func (p *parsectx) binary(scan *lexer, ops string, operand rule) (*node, error) {
	n, err := operand(p, scan)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.must()
		if tok.kind != tokenOp || !strings.Contains(ops, tok.text) {
			scan.push(tok)
			return n, nil
		}
		rhs, err := operand(p, scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: binop(tok.text), left: n, right: rhs}
	}
}

// negated parses any number of unary minus signs followed by operand.
func (p *parsectx) negated(scan *lexer, operand rule) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOp || tok.text != "-" {
		scan.push(tok)
		return operand(p, scan)
	}
	x, err := p.negated(scan, operand)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeNeg, left: x}, nil
}

func (p *parsectx) call(scan *lexer) (*node, error) {
	n, err := p.power(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.must()
		if tok.kind != tokenOpen {
			scan.push(tok)
			return n, nil
		}
		arg, err := p.group(scan, tok)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeCall, left: n, right: arg}
	}
}

func (p *parsectx) power(scan *lexer) (*node, error) {
	n, err := p.primary(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.must()
		if tok.kind != tokenOp || tok.text != "^" {
			scan.push(tok)
			return n, nil
		}
		if !p.leftpow {
			// x^y^z -> x^(y^z)
			rhs, err := p.negated(scan, (*parsectx).power)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodePow, left: n, right: rhs}, nil
		}
		rhs, err := p.negated(scan, (*parsectx).primary)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodePow, left: n, right: rhs}
	}
}

func (p *parsectx) primary(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, num: tok.num}
	case tokenPoly:
		n = &node{kind: nodePoly, name: tok.text[0]}
	case tokenVar:
		p.names[tok.text[0]] = true
		n = &node{kind: nodeVar, name: tok.text[0]}
	case tokenOpen:
		return p.group(scan, tok)
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	case tokenOp:
		return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
	default:
		panic("polysolve: unknown token: " + tok.String())
	}
	if err := lookahead(scan); err != nil {
		return nil, err
	}
	return n, nil
}

// group parses a parenthesized term following the already scanned open
// bracket.
func (p *parsectx) group(scan *lexer, open lexToken) (*node, error) {
	n, err := p.term(scan)
	if err != nil {
		return nil, err
	}
	switch end := scan.must(); end.kind {
	case tokenClose:
	case tokenEOF:
		return nil, &BracketError{Col: end.pos, Left: open.text}
	default:
		return nil, &SyntaxError{Col: end.pos, Text: end.text, Want: `operator or ")"`}
	}
	if err := lookahead(scan); err != nil {
		return nil, err
	}
	return n, nil
}

// lookahead scans the next token and pushes it back.
func lookahead(scan *lexer) error {
	tok, err := scan.next()
	if err != nil {
		return err
	}
	scan.push(tok)
	return nil
}

// binop gets the node kind for a binary operator token.
func binop(text string) nodeKind {
	switch text {
	case "+":
		return nodeAdd
	case "-":
		return nodeSub
	case "*":
		return nodeMul
	case "/":
		return nodeDiv
	case "^":
		return nodePow
	default:
		panic("polysolve: unknown binary operator " + text)
	}
}

// Vars returns the variable names used when evaluating the expression, in
// sorted order.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a fully parenthesized string representation of the parsed
// expression. The result parses to an equivalent expression.
func (e *Expr) String() string {
	return e.n.String()
}
