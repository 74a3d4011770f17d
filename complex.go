package polysolve

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the absolute tolerance used for every comparison of floating
// point values. Numbers closer than Epsilon are equal.
const Epsilon = 1e-6

// IsZeroFloat reports whether x is within Epsilon of zero.
func IsZeroFloat(x float64) bool {
	return math.Abs(x) < Epsilon
}

// EqualFloat reports whether x and y are within Epsilon of each other.
func EqualFloat(x, y float64) bool {
	return math.Abs(x-y) < Epsilon
}

// IsZero reports whether both components of z are within Epsilon of zero.
func IsZero(z complex128) bool {
	return IsZeroFloat(real(z)) && IsZeroFloat(imag(z))
}

// Equal reports whether a and b are equal componentwise within Epsilon.
func Equal(a, b complex128) bool {
	return EqualFloat(real(a), real(b)) && EqualFloat(imag(a), imag(b))
}

// Normalize replaces each component of z that is within Epsilon of zero,
// including -0, with +0.
func Normalize(z complex128) complex128 {
	re, im := real(z), imag(z)
	if IsZeroFloat(re) {
		re = 0
	}
	if IsZeroFloat(im) {
		im = 0
	}
	return complex(re, im)
}

// Mag returns the magnitude of z.
func Mag(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// Arg returns the argument of z in (-π, π].
func Arg(z complex128) float64 {
	return math.Atan2(imag(z), real(z))
}

// Sqrt returns the principal square root of z, the one with non-negative
// real part, or with non-negative imaginary part when the real part is zero.
// The root is computed with the half-angle formulas rather than through polar
// form so that it stays accurate near the negative real axis.
func Sqrt(z complex128) complex128 {
	re, im := real(z), imag(z)
	if IsZeroFloat(im) {
		if re >= 0 {
			return complex(math.Sqrt(re), 0)
		}
		return complex(0, math.Sqrt(-re))
	}
	m := Mag(z)
	a := math.Sqrt(math.Max(0, (m+re)/2))
	b := math.Sqrt(math.Max(0, (m-re)/2))
	if im < 0 {
		b = -b
	}
	return complex(a, b)
}

// Cbrt returns the k'th cube root of z for k in {0, 1, 2}. Root k has
// argument (Arg(z) + 2πk)/3, so Cbrt(z, 0) is the principal cube root.
func Cbrt(z complex128, k int) complex128 {
	if k < 0 || k > 2 {
		panic("polysolve: cube root index " + strconv.Itoa(k) + " out of range")
	}
	if IsZero(z) {
		return 0
	}
	r := math.Cbrt(Mag(z))
	theta := (Arg(z) + 2*math.Pi*float64(k)) / 3
	return complex(r*math.Cos(theta), r*math.Sin(theta))
}

// IPow returns z raised to the non-negative integer power n by repeated
// multiplication. IPow(z, 0) is 1 for every z. Panics if n is negative.
func IPow(z complex128, n int) complex128 {
	if n < 0 {
		panic("polysolve: negative exponent " + strconv.Itoa(n))
	}
	r := complex128(1)
	// Square-and-multiply keeps large exponents from looping for ages.
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			r *= z
		}
		z *= z
	}
	return r
}

// FormatComplex formats z after normalizing it. Purely real numbers are
// formatted as reals, purely imaginary numbers with an i suffix, and general
// complex numbers as "a + bi" or "a - bi". Components within Epsilon of zero
// are dropped, so the result is for display.
func FormatComplex(z complex128) string {
	return formatComplex(Normalize(z))
}

// FormatExact formats z in the same forms as FormatComplex without
// normalizing it, except that -0 becomes 0. The result parses back to exactly
// z for finite z.
func FormatExact(z complex128) string {
	re, im := real(z), imag(z)
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	return formatComplex(complex(re, im))
}

func formatComplex(z complex128) string {
	re, im := real(z), imag(z)
	switch {
	case im == 0:
		return formatFloat(re)
	case re == 0:
		return formatFloat(im) + "i"
	}
	var b strings.Builder
	b.WriteString(formatFloat(re))
	if im < 0 {
		b.WriteString(" - ")
		im = -im
	} else {
		b.WriteString(" + ")
	}
	b.WriteString(formatFloat(im))
	b.WriteByte('i')
	return b.String()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
