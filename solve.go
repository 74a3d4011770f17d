package polysolve

import (
	"math"
	"strconv"
	"strings"
)

// Solutions is the set of roots of a polynomial.
type Solutions struct {
	// Roots holds the distinct roots found, normalized.
	Roots []complex128
	// Infinite indicates that every value is a root, which happens only for
	// the zero polynomial.
	Infinite bool
}

// Len returns the number of roots, or -1 if there are infinitely many.
func (s Solutions) Len() int {
	if s.Infinite {
		return -1
	}
	return len(s.Roots)
}

// String formats the solutions as a count followed by one line per root.
func (s Solutions) String() string {
	switch {
	case s.Infinite:
		return "Infinite solutions"
	case len(s.Roots) == 0:
		return "No solutions"
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(s.Roots)))
	if len(s.Roots) == 1 {
		b.WriteString(" solution")
	} else {
		b.WriteString(" solutions")
	}
	for _, x := range s.Roots {
		b.WriteString("\n  - ")
		b.WriteString(FormatComplex(x))
	}
	return b.String()
}

// Solve finds the roots of p = 0 in closed form. The second result is false
// if p has a shape Solve does not handle: cubics whose depressed form has a
// non-zero discriminant and a non-zero linear coefficient, and quartics.
// That is distinct from a solved polynomial that has no roots.
func Solve(p Poly) (Solutions, bool) {
	c := p.Coeffs
	switch p.Degree() {
	case -1:
		return Solutions{Infinite: true}, true
	case 0:
		return Solutions{}, true
	case 1:
		return roots(-c[0] / c[1]), true
	case 2:
		return solve2(c[2], c[1], c[0]), true
	case 3:
		return solve3(c[3], c[2], c[1], c[0])
	default:
		return Solutions{}, false
	}
}

// SolveValue finds the roots of v = 0. A scalar is treated as a constant
// polynomial.
func SolveValue(v Value) (Solutions, bool) {
	if v.Kind() == KindScalar {
		return Solve(NewPoly('x', v.Num()))
	}
	return Solve(v.Poly())
}

// SolveQuadratic finds the roots of a*x^2 + b*x + c = 0 for real a, b, c.
// Every such equation is solvable.
func SolveQuadratic(a, b, c float64) Solutions {
	s, ok := Solve(NewPoly('x', complex(c, 0), complex(b, 0), complex(a, 0)))
	if !ok {
		panic("polysolve: quadratic not solved")
	}
	return s
}

// roots normalizes xs and drops duplicates within Epsilon.
func roots(xs ...complex128) Solutions {
	r := make([]complex128, 0, len(xs))
outer:
	for _, x := range xs {
		x = Normalize(x)
		for _, y := range r {
			if Equal(x, y) {
				continue outer
			}
		}
		r = append(r, x)
	}
	return Solutions{Roots: r}
}

// solve2 solves a*x^2 + b*x + c = 0 for non-zero a.
func solve2(a, b, c complex128) Solutions {
	d := Sqrt(b*b - 4*a*c)
	return roots((-b-d)/(2*a), (-b+d)/(2*a))
}

// solve3 solves a*x^3 + b*x^2 + c*x + d = 0 for non-zero a by substituting
// x = y - b/3a to get the depressed cubic y^3 + p*y + q = 0.
func solve3(a, b, c, d complex128) (Solutions, bool) {
	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)
	shift := b / (3 * a)
	if IsZero(p) {
		// y^3 = -q. Prefer the real cube root when there is one.
		y := cbrtBy(-q, func(w complex128) float64 { return math.Abs(imag(w)) })
		return roots(y - shift), true
	}
	disc := (q/2)*(q/2) + (p/3)*(p/3)*(p/3)
	if !IsZero(disc) {
		return Solutions{}, false
	}
	// A double root w satisfies 3w^2 + p = 0 as well as the cubic.
	w := cbrtBy(q/2, func(w complex128) float64 { return Mag(3*w*w + p) })
	return roots(-2*w-shift, w-shift), true
}

// cbrtBy returns the cube root of z that minimizes cost.
func cbrtBy(z complex128, cost func(complex128) float64) complex128 {
	best := Cbrt(z, 0)
	bc := cost(best)
	for k := 1; k < 3; k++ {
		w := Cbrt(z, k)
		if c := cost(w); c < bc {
			best, bc = w, c
		}
	}
	return best
}
