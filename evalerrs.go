package polysolve

import "strconv"

// NameError is an error from a lookup for a variable that is missing from the
// evaluation environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// TypeError is an error from applying an operator to a pair of operand kinds
// for which it is undefined, like dividing by a polynomial.
type TypeError struct {
	// Op is the operator, or "call" for evaluation at a point.
	Op string
	// Left and Right are the kinds of the operands.
	Left, Right Kind
}

func (err *TypeError) Error() string {
	if err.Op == "call" {
		return "cannot call " + err.Left.String() + " with " + err.Right.String() + " argument"
	}
	return "operator " + err.Op + " is undefined for " + err.Left.String() + " and " + err.Right.String()
}

// DegreeError is an error from a polynomial operation whose result would have
// degree above MaxDegree. It unwraps to ErrTooLarge.
type DegreeError struct {
	// Degree is the degree the result would have had.
	Degree int
}

func (err *DegreeError) Error() string {
	return "result degree " + strconv.Itoa(err.Degree) + " exceeds maximum " + strconv.Itoa(MaxDegree)
}

func (err *DegreeError) Unwrap() error {
	return ErrTooLarge
}

// IndeterminateError is an error from combining polynomials over different
// indeterminates. It unwraps to ErrDifferentVar.
type IndeterminateError struct {
	Left, Right byte
}

func (err *IndeterminateError) Error() string {
	return "cannot combine polynomials in " + string(err.Left) + " and " + string(err.Right)
}

func (err *IndeterminateError) Unwrap() error {
	return ErrDifferentVar
}

// ZeroDivisionError is an error from dividing by a scalar within Epsilon of
// zero, including raising zero to a negative power.
type ZeroDivisionError struct {
	// Op is the operator that divided.
	Op string
}

func (err *ZeroDivisionError) Error() string {
	if err.Op == "^" {
		return "division by zero: zero raised to a negative power"
	}
	return "division by zero"
}

// PowerError is an error from an exponentiation outside the supported cases:
// complex exponents, fractional powers of negative or complex bases, and
// polynomials raised to anything but non-negative integers.
type PowerError struct {
	Base, Exp Value
	// Reason describes which rule the operands broke.
	Reason string
}

func (err *PowerError) Error() string {
	return "cannot compute (" + err.Base.String() + ")^(" + err.Exp.String() + "): " + err.Reason
}
