package polysolve

import "strings"

// Kind is the kind of a Value.
type Kind int8

const (
	// KindScalar is a complex scalar.
	KindScalar Kind = iota
	// KindPoly is a polynomial.
	KindPoly

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindPoly:
		return "polynomial"
	default:
		panic("polysolve: invalid value kind")
	}
}

// Value is the result of evaluating an expression: either a complex scalar or
// a polynomial. The zero Value is the scalar 0.
type Value struct {
	kind Kind
	num  complex128
	poly Poly
}

// Scalar creates a scalar value.
func Scalar(c complex128) Value {
	return Value{kind: KindScalar, num: c}
}

// Polynomial creates a polynomial value.
func Polynomial(p Poly) Value {
	return Value{kind: KindPoly, poly: p}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Num returns the scalar value of v. Panics if v is not a scalar.
func (v Value) Num() complex128 {
	if v.kind != KindScalar {
		panic("polysolve: Num of " + v.kind.String() + " value")
	}
	return v.num
}

// Poly returns the polynomial value of v. Panics if v is not a polynomial.
func (v Value) Poly() Poly {
	if v.kind != KindPoly {
		panic("polysolve: Poly of " + v.kind.String() + " value")
	}
	return v.poly
}

// Neg returns -v.
func (v Value) Neg() Value {
	if v.kind == KindPoly {
		return Polynomial(v.poly.Neg())
	}
	return Scalar(-v.num)
}

// Equal reports whether v and w have the same kind and are equal within
// Epsilon.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	if v.kind == KindPoly {
		return v.poly.Equal(w.poly)
	}
	return Equal(v.num, w.num)
}

// String formats v for display.
func (v Value) String() string {
	if v.kind == KindPoly {
		return v.poly.String()
	}
	return FormatComplex(v.num)
}

// Source formats v as an expression that evaluates to exactly v, including
// its kind. A polynomial with no non-constant terms would otherwise evaluate
// to a scalar, so it carries an explicit zero term in its indeterminate.
func (v Value) Source() string {
	if v.kind != KindPoly {
		return FormatExact(v.num)
	}
	var b strings.Builder
	n := 0
	for i := MaxDegree; i >= 0; i-- {
		c := v.poly.Coeffs[i]
		if c == 0 {
			continue
		}
		if n > 0 {
			b.WriteString(" + ")
		}
		writeSourceTerm(&b, v.poly.Var, Term{Power: i, Coeff: c})
		n++
	}
	if c := v.poly.Coeffs; n == 0 || c[1] == 0 && c[2] == 0 && c[3] == 0 && c[4] == 0 {
		if n > 0 {
			b.WriteString(" + ")
		}
		b.WriteString("0*")
		b.WriteByte(v.poly.Var)
	}
	return b.String()
}

// writeSourceTerm writes a term of a polynomial so that it parses without the
// negative signs of its coefficient binding to anything else.
func writeSourceTerm(b *strings.Builder, x byte, t Term) {
	b.WriteByte('(')
	b.WriteString(FormatExact(t.Coeff))
	b.WriteByte(')')
	if t.Power == 0 {
		return
	}
	b.WriteByte('*')
	b.WriteByte(x)
	if t.Power > 1 {
		b.WriteByte('^')
		b.WriteByte('0' + byte(t.Power))
	}
}
