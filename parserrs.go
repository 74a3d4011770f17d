package polysolve

import "strconv"

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket, or of the end of the input for an
	// open bracket that is never closed.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating a valid token in a place where the
// grammar does not allow it. It implements InputError.
type SyntaxError struct {
	// Col is the position of the unexpected token.
	Col int
	// Text is the unexpected token.
	Text string
	// Want describes what the parser expected instead.
	Want string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+", expected "+err.Want)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// LengthError is an error indicating a source that is too long to parse. The
// length counts runes after whitespace is removed. It implements InputError.
type LengthError struct {
	// Len is the length of the compacted source.
	Len int
	// Max is the maximum allowed length.
	Max int
}

func (err *LengthError) Error() string {
	return errpos(err.Pos(), "expression of length "+strconv.Itoa(err.Len)+" exceeds maximum "+strconv.Itoa(err.Max))
}

// Pos returns the position of the first rune past the maximum length.
func (err *LengthError) Pos() int {
	return err.Max + 1
}

// StatementError is an error indicating a malformed statement keyword or
// assignment. It implements InputError.
type StatementError struct {
	// Col is the position of the error.
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *StatementError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *StatementError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, counted in the
	// source with whitespace removed.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LengthError)(nil)
	_ InputError = (*StatementError)(nil)
	_ InputError = (*LexError)(nil)
)
