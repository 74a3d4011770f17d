package polysolve

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Eval evaluates an expression and returns the result. The first error from
// any subexpression, e.g. a missing variable definition or a division by zero,
// ends evaluation.
func (env *Env) Eval(e *Expr) (Value, error) {
	return e.n.eval(env)
}

// EvalString is a shortcut to parse and evaluate a string expression in a new
// environment.
func EvalString(src string, opts ...EnvOption) (Value, error) {
	a, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return NewEnv(opts...).Eval(a)
}

func (n *node) eval(env *Env) (Value, error) {
	switch n.kind {
	case nodeNum:
		return Scalar(n.num), nil
	case nodePoly:
		return Polynomial(Monomial(n.name)), nil
	case nodeVar:
		v, ok := env.Lookup(n.name)
		if !ok {
			return Value{}, &NameError{Name: string(n.name)}
		}
		return v, nil
	case nodeNeg:
		x, err := n.left.eval(env)
		if err != nil {
			return Value{}, err
		}
		return x.Neg(), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeCall:
		l, err := n.left.eval(env)
		if err != nil {
			return Value{}, err
		}
		r, err := n.right.eval(env)
		if err != nil {
			return Value{}, err
		}
		op := operations[n.kind]
		if n.kind == nodeSub {
			r = r.Neg()
		}
		return op.apply(env, l, r)
	default:
		panic("polysolve: invalid AST node " + n.kind.String())
	}
}

// binaryFunc is the implementation of an operator for one pair of operand
// kinds.
type binaryFunc func(env *Env, a, b Value) (Value, error)

// operation is a binary operator with implementations indexed by operand
// kinds. A nil implementation means the operator is undefined for that pair.
type operation struct {
	name string
	fns  [kindCount][kindCount]binaryFunc
}

func (op *operation) apply(env *Env, a, b Value) (Value, error) {
	f := op.fns[a.kind][b.kind]
	if f == nil {
		return Value{}, &TypeError{Op: op.name, Left: a.kind, Right: b.kind}
	}
	return f(env, a, b)
}

var (
	opAdd = operation{
		name: "+",
		fns: [kindCount][kindCount]binaryFunc{
			KindScalar: {KindScalar: addss, KindPoly: addsp},
			KindPoly:   {KindScalar: addps, KindPoly: addpp},
		},
	}
	opMul = operation{
		name: "*",
		fns: [kindCount][kindCount]binaryFunc{
			KindScalar: {KindScalar: mulss, KindPoly: mulsp},
			KindPoly:   {KindScalar: mulps, KindPoly: mulpp},
		},
	}
	opDiv = operation{
		name: "/",
		fns: [kindCount][kindCount]binaryFunc{
			KindScalar: {KindScalar: divss},
			KindPoly:   {KindScalar: divps},
		},
	}
	opPow = operation{
		name: "^",
		fns: [kindCount][kindCount]binaryFunc{
			KindScalar: {KindScalar: powss},
			KindPoly:   {KindScalar: powps},
		},
	}
	opCall = operation{
		name: "call",
		fns: [kindCount][kindCount]binaryFunc{
			KindPoly: {KindScalar: callps},
		},
	}
)

// operations maps binary node kinds to their operators. Subtraction is
// addition of the negated right operand.
var operations = [...]*operation{
	nodeAdd:  &opAdd,
	nodeSub:  &opAdd,
	nodeMul:  &opMul,
	nodeDiv:  &opDiv,
	nodePow:  &opPow,
	nodeCall: &opCall,
}

func addss(env *Env, a, b Value) (Value, error) {
	return Scalar(a.num + b.num), nil
}

func addsp(env *Env, a, b Value) (Value, error) {
	return Polynomial(b.poly.AddScalar(a.num)), nil
}

func addps(env *Env, a, b Value) (Value, error) {
	return addsp(env, b, a)
}

func addpp(env *Env, a, b Value) (Value, error) {
	p, err := a.poly.Add(b.poly)
	if err != nil {
		return Value{}, polyerr(err, a.poly, b.poly)
	}
	return Polynomial(p), nil
}

func mulss(env *Env, a, b Value) (Value, error) {
	return Scalar(a.num * b.num), nil
}

func mulsp(env *Env, a, b Value) (Value, error) {
	return Polynomial(b.poly.Scale(a.num)), nil
}

func mulps(env *Env, a, b Value) (Value, error) {
	return mulsp(env, b, a)
}

func mulpp(env *Env, a, b Value) (Value, error) {
	p, err := a.poly.Mul(b.poly)
	if err != nil {
		return Value{}, polyerr(err, a.poly, b.poly)
	}
	return Polynomial(p), nil
}

func divss(env *Env, a, b Value) (Value, error) {
	if IsZero(b.num) {
		return Value{}, &ZeroDivisionError{Op: "/"}
	}
	return Scalar(a.num / b.num), nil
}

func divps(env *Env, a, b Value) (Value, error) {
	if IsZero(b.num) {
		return Value{}, &ZeroDivisionError{Op: "/"}
	}
	return Polynomial(a.poly.Quo(b.num)), nil
}

// whole returns the nearest integer to x and whether x is within Epsilon of
// it.
func whole(x float64) (float64, bool) {
	w := math.Round(x)
	return w, IsZeroFloat(x - w)
}

func powss(env *Env, a, b Value) (Value, error) {
	base, e := a.num, b.num
	if !IsZeroFloat(imag(e)) {
		return Value{}, &PowerError{Base: a, Exp: b, Reason: "exponent is not real"}
	}
	x := real(e)
	if w, ok := whole(x); ok {
		if math.Abs(w) > math.MaxInt32 {
			return Value{}, &PowerError{Base: a, Exp: b, Reason: "exponent is too large"}
		}
		n := int(w)
		if n >= 0 {
			return Scalar(IPow(base, n)), nil
		}
		if IsZero(base) {
			return Value{}, &ZeroDivisionError{Op: "^"}
		}
		return Scalar(1 / IPow(base, -n)), nil
	}
	if !IsZeroFloat(imag(base)) {
		return Value{}, &PowerError{Base: a, Exp: b, Reason: "fractional power of a complex base"}
	}
	r := real(base)
	switch {
	case IsZeroFloat(r):
		if x > 0 {
			return Scalar(0), nil
		}
		return Value{}, &ZeroDivisionError{Op: "^"}
	case r < 0:
		return Value{}, &PowerError{Base: a, Exp: b, Reason: "fractional power of a negative base"}
	}
	return Scalar(complex(env.realpow(r, x), 0)), nil
}

// realpow computes x^y for positive x at the environment's precision.
func (env *Env) realpow(x, y float64) float64 {
	if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
		return math.Pow(x, y)
	}
	bx := new(big.Float).SetPrec(env.prec).SetFloat64(x)
	by := new(big.Float).SetPrec(env.prec).SetFloat64(y)
	z := bigfloat.Pow(new(big.Float).SetPrec(env.prec), bx, by)
	f, _ := z.Float64()
	return f
}

func powps(env *Env, a, b Value) (Value, error) {
	e := b.num
	if !IsZeroFloat(imag(e)) {
		return Value{}, &PowerError{Base: a, Exp: b, Reason: "exponent is not real"}
	}
	w, ok := whole(real(e))
	if !ok || w < 0 {
		return Value{}, &PowerError{Base: a, Exp: b, Reason: "polynomial exponent must be a non-negative integer"}
	}
	if w > math.MaxInt32 {
		return Value{}, &PowerError{Base: a, Exp: b, Reason: "exponent is too large"}
	}
	n := int(w)
	p := a.poly
	d := p.Degree()
	if d <= 0 {
		return Polynomial(NewPoly(p.Var, IPow(p.Coeffs[0], n))), nil
	}
	if d*n > MaxDegree {
		return Value{}, &DegreeError{Degree: d * n}
	}
	r := NewPoly(p.Var, 1)
	for i := 0; i < n; i++ {
		var err error
		r, err = r.Mul(p)
		if err != nil {
			return Value{}, polyerr(err, r, p)
		}
	}
	return Polynomial(r), nil
}

func callps(env *Env, a, b Value) (Value, error) {
	return Scalar(a.poly.Eval(b.num)), nil
}

// polyerr converts an error from polynomial algebra on p and q to an
// evaluation error.
func polyerr(err error, p, q Poly) error {
	switch {
	case errors.Is(err, ErrDifferentVar):
		return &IndeterminateError{Left: p.Var, Right: q.Var}
	case errors.Is(err, ErrTooLarge):
		return &DegreeError{Degree: p.Degree() + q.Degree()}
	default:
		return err
	}
}
