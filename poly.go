package polysolve

import (
	"errors"
	"strconv"
	"strings"
)

// MaxDegree is the highest degree a Poly can represent.
const MaxDegree = 4

var (
	// ErrTooLarge is returned from polynomial operations whose result would
	// have degree above MaxDegree.
	ErrTooLarge = errors.New("polynomial degree too large")
	// ErrDifferentVar is returned from polynomial operations on operands
	// over different indeterminates.
	ErrDifferentVar = errors.New("polynomials over different indeterminates")
)

// Poly is a polynomial in a single indeterminate with complex coefficients.
// Coeffs[i] is the coefficient of Var^i.
type Poly struct {
	Var    byte
	Coeffs [MaxDegree + 1]complex128
}

// NewPoly creates a polynomial over v from coefficients in increasing order of
// power, starting with the constant term. Panics if more than MaxDegree+1
// coefficients are given.
func NewPoly(v byte, coeffs ...complex128) Poly {
	if len(coeffs) > MaxDegree+1 {
		panic("polysolve: " + strconv.Itoa(len(coeffs)) + " coefficients is too many for a polynomial")
	}
	p := Poly{Var: v}
	copy(p.Coeffs[:], coeffs)
	return p
}

// Monomial returns the polynomial 1*v.
func Monomial(v byte) Poly {
	return NewPoly(v, 0, 1)
}

// Degree returns the index of the highest non-zero coefficient, or -1 if all
// coefficients are zero.
func (p Poly) Degree() int {
	for i := MaxDegree; i >= 0; i-- {
		if !IsZero(p.Coeffs[i]) {
			return i
		}
	}
	return -1
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	for i, c := range p.Coeffs {
		p.Coeffs[i] = -c
	}
	return p
}

// Add returns p + q. The result is ErrDifferentVar if p and q have different
// indeterminates.
func (p Poly) Add(q Poly) (Poly, error) {
	if p.Var != q.Var {
		return Poly{}, ErrDifferentVar
	}
	for i, c := range q.Coeffs {
		p.Coeffs[i] += c
	}
	return p, nil
}

// Sub returns p - q. The result is ErrDifferentVar if p and q have different
// indeterminates.
func (p Poly) Sub(q Poly) (Poly, error) {
	return p.Add(q.Neg())
}

// Mul returns the product of p and q. The result is ErrDifferentVar if p and q
// have different indeterminates or ErrTooLarge if the product would have
// degree above MaxDegree.
func (p Poly) Mul(q Poly) (Poly, error) {
	if p.Var != q.Var {
		return Poly{}, ErrDifferentVar
	}
	if p.Degree()+q.Degree() > MaxDegree {
		return Poly{}, ErrTooLarge
	}
	r := Poly{Var: p.Var}
	for i, a := range p.Coeffs {
		for j, b := range q.Coeffs {
			if i+j > MaxDegree {
				break
			}
			r.Coeffs[i+j] += a * b
		}
	}
	return r, nil
}

// AddScalar returns p + c.
func (p Poly) AddScalar(c complex128) Poly {
	p.Coeffs[0] += c
	return p
}

// Scale returns c*p.
func (p Poly) Scale(c complex128) Poly {
	for i := range p.Coeffs {
		p.Coeffs[i] *= c
	}
	return p
}

// Quo returns p/c, dividing each coefficient. The caller must ensure c is not
// zero.
func (p Poly) Quo(c complex128) Poly {
	for i := range p.Coeffs {
		p.Coeffs[i] /= c
	}
	return p
}

// Eval evaluates p at x.
func (p Poly) Eval(x complex128) complex128 {
	var r complex128
	for i := MaxDegree; i >= 0; i-- {
		r = r*x + p.Coeffs[i]
	}
	return r
}

// Equal reports whether p and q have the same indeterminate and all their
// coefficients are equal within Epsilon.
func (p Poly) Equal(q Poly) bool {
	if p.Var != q.Var {
		return false
	}
	for i := range p.Coeffs {
		if !Equal(p.Coeffs[i], q.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Term is a single non-zero term of a polynomial.
type Term struct {
	// Power is the exponent of the indeterminate.
	Power int
	// Coeff is the coefficient, normalized.
	Coeff complex128
}

// Terms returns the non-zero terms of p from highest to lowest power.
func (p Poly) Terms() []Term {
	var t []Term
	for i := MaxDegree; i >= 0; i-- {
		if !IsZero(p.Coeffs[i]) {
			t = append(t, Term{Power: i, Coeff: Normalize(p.Coeffs[i])})
		}
	}
	return t
}

// String formats p as its non-zero terms joined by " + ", highest power first.
// A coefficient of exactly 1 is omitted except on the constant term. The zero
// polynomial formats as "0".
func (p Poly) String() string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		p.fmtterm(&b, t)
	}
	return b.String()
}

func (p Poly) fmtterm(b *strings.Builder, t Term) {
	if t.Power == 0 || !Equal(t.Coeff, 1) {
		if real(t.Coeff) != 0 && imag(t.Coeff) != 0 {
			b.WriteByte('(')
			b.WriteString(FormatComplex(t.Coeff))
			b.WriteByte(')')
		} else {
			b.WriteString(FormatComplex(t.Coeff))
		}
		if t.Power == 0 {
			return
		}
		b.WriteByte('*')
	}
	b.WriteByte(p.Var)
	if t.Power > 1 {
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(t.Power))
	}
}
