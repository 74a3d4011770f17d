package polysolve_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/polysolve"
)

func TestDegree(t *testing.T) {
	cases := []struct {
		name string
		p    polysolve.Poly
		want int
	}{
		{"zero", polysolve.NewPoly('x'), -1},
		{"noise", polysolve.NewPoly('x', 1e-9, 1e-9i), -1},
		{"const", polysolve.NewPoly('x', 3), 0},
		{"monomial", polysolve.Monomial('x'), 1},
		{"quartic", polysolve.NewPoly('x', 0, 0, 0, 0, 1i), 4},
		{"gap", polysolve.NewPoly('x', 1, 0, 2, 0, 0), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.Degree(); got != c.want {
				t.Errorf("degree of %v: want %d, got %d", c.p, c.want, got)
			}
		})
	}
}

func TestPolyArith(t *testing.T) {
	x := polysolve.Monomial('x')
	one := polysolve.NewPoly('x', 1)
	xp1, err := x.Add(one)
	if err != nil {
		t.Fatal(err)
	}
	if want := polysolve.NewPoly('x', 1, 1); !xp1.Equal(want) {
		t.Errorf("x + 1: want %v, got %v", want, xp1)
	}
	sq, err := xp1.Mul(xp1)
	if err != nil {
		t.Fatal(err)
	}
	if want := polysolve.NewPoly('x', 1, 2, 1); !sq.Equal(want) {
		t.Errorf("(x+1)^2: want %v, got %v", want, sq)
	}
	d, err := sq.Sub(sq)
	if err != nil {
		t.Fatal(err)
	}
	if d.Degree() != -1 {
		t.Errorf("p - p should be zero, got %v", d)
	}
	if n := xp1.Neg(); !n.Equal(polysolve.NewPoly('x', -1, -1)) {
		t.Errorf("-(x+1) is %v", n)
	}
	if s := xp1.Scale(2i); !s.Equal(polysolve.NewPoly('x', 2i, 2i)) {
		t.Errorf("2i(x+1) is %v", s)
	}
	if got := sq.Eval(3); !polysolve.Equal(got, 16) {
		t.Errorf("(x+1)^2 at 3: want 16, got %v", got)
	}
	if got := sq.Eval(1i); !polysolve.Equal(got, 2i) {
		t.Errorf("(x+1)^2 at i: want 2i, got %v", got)
	}
}

func TestPolyErrors(t *testing.T) {
	x := polysolve.Monomial('x')
	y := polysolve.Monomial('y')
	if _, err := x.Add(y); !errors.Is(err, polysolve.ErrDifferentVar) {
		t.Errorf("x + y: want ErrDifferentVar, got %v", err)
	}
	if _, err := x.Sub(y); !errors.Is(err, polysolve.ErrDifferentVar) {
		t.Errorf("x - y: want ErrDifferentVar, got %v", err)
	}
	if _, err := x.Mul(y); !errors.Is(err, polysolve.ErrDifferentVar) {
		t.Errorf("x * y: want ErrDifferentVar, got %v", err)
	}
	x4 := polysolve.NewPoly('x', 1, 1, 1, 1, 1)
	if _, err := x4.Mul(x4); !errors.Is(err, polysolve.ErrTooLarge) {
		t.Errorf("quartic squared: want ErrTooLarge, got %v", err)
	}
	if _, err := x4.Mul(x); !errors.Is(err, polysolve.ErrTooLarge) {
		t.Errorf("quartic times x: want ErrTooLarge, got %v", err)
	}
	x2 := polysolve.NewPoly('x', 0, 0, 1)
	if p, err := x2.Mul(x2); err != nil || p.Degree() != 4 {
		t.Errorf("x^2 * x^2: got %v, %v", p, err)
	}
}

func TestNewPolyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("six coefficients did not panic")
		}
	}()
	polysolve.NewPoly('x', 1, 2, 3, 4, 5, 6)
}

func TestPolyString(t *testing.T) {
	cases := []struct {
		p    polysolve.Poly
		want string
	}{
		{polysolve.NewPoly('x'), "0"},
		{polysolve.NewPoly('x', 5), "5"},
		{polysolve.Monomial('x'), "x"},
		{polysolve.NewPoly('x', 1, 1), "x + 1"},
		{polysolve.NewPoly('x', 1, -2, 1), "x^2 + -2*x + 1"},
		{polysolve.NewPoly('y', 0, 0, 0, 3), "3*y^3"},
		{polysolve.NewPoly('z', 0, 1+2i), "(1 + 2i)*z"},
		{polysolve.NewPoly('x', 2i, 0, 0, 0, 1), "x^4 + 2i"},
		{polysolve.NewPoly('x', 1e-9, 1), "x"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestTerms(t *testing.T) {
	p := polysolve.NewPoly('x', -1, 0, 3i)
	terms := p.Terms()
	want := []polysolve.Term{{Power: 2, Coeff: 3i}, {Power: 0, Coeff: -1}}
	if len(terms) != len(want) {
		t.Fatalf("want %v, got %v", want, terms)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("term %d: want %v, got %v", i, want[i], terms[i])
		}
	}
}
