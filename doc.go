// Package polysolve implements a calculator over complex numbers and
// polynomials in one indeterminate, with closed-form root finding.
//
// Lowercase letters are polynomial indeterminates, so "x^2 - 1" is a
// polynomial in x. Uppercase letters are variables holding either kind of
// value. A parenthesized argument after a polynomial evaluates it at a point:
// "(x^2 - 1)(3)" is 8. Numbers may carry an i suffix to make them imaginary,
// as in "2 + 3i". Whitespace is ignored everywhere.
//
// Polynomials have degree at most MaxDegree. Solve finds the roots of
// polynomials up to degree two and of some cubics. It reports the shapes it
// cannot solve rather than approximating them.
package polysolve
