package script

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a ParseError. An ErrorKind is itself an error, so that
// errors.Is(err, script.DanglingOperator) reports whether err is a
// *ParseError of that kind.
type ErrorKind int8

const (
	kindNone ErrorKind = iota
	// EmptySource means the source text was empty or only whitespace.
	EmptySource
	// MalformedSignature means the argument list parentheses or the body
	// braces are missing or out of order.
	MalformedSignature
	// ArityMismatch means the argument list names a different number of
	// parameters than requested.
	ArityMismatch
	// UnknownIdentifier means the body names something that is not a
	// parameter.
	UnknownIdentifier
	// InvalidNumber means a literal could not be read as the value type,
	// including when it is out of range.
	InvalidNumber
	// UnexpectedToken means a character that cannot begin an operand appeared
	// where an operand was expected.
	UnexpectedToken
	// ExpectedOperator means two operands appeared with no operator between.
	ExpectedOperator
	// EmptyGroup means a pair of parentheses, or the body itself, contained
	// no expression.
	EmptyGroup
	// DanglingOperator means an expression ended with an operator.
	DanglingOperator
	// UnclosedGroup means the body ended inside parentheses.
	UnclosedGroup
	// TooDeep means parentheses were nested past the parser's limit.
	TooDeep
)

var kindnames = [...]string{
	kindNone:           "none",
	EmptySource:        "empty source",
	MalformedSignature: "malformed signature",
	ArityMismatch:      "arity mismatch",
	UnknownIdentifier:  "unknown identifier",
	InvalidNumber:      "invalid number",
	UnexpectedToken:    "unexpected token",
	ExpectedOperator:   "expected operator",
	EmptyGroup:         "empty group",
	DanglingOperator:   "dangling operator",
	UnclosedGroup:      "unclosed group",
	TooDeep:            "nesting too deep",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

func (k ErrorKind) Error() string {
	return "script: " + k.String()
}

// ParseError is an error compiling a function literal. It implements
// InputError.
type ParseError struct {
	// Kind is the class of error.
	Kind ErrorKind
	// Text is the offending part of the source.
	Text string
	// Col is the 1-based byte position in the source where the problem was
	// found.
	Col int
	// Want and Got are the declared and counted number of arguments for
	// ArityMismatch, and the nesting limit for TooDeep.
	Want, Got int
}

func (err *ParseError) Error() string {
	q := strconv.Quote(err.Text)
	switch err.Kind {
	case EmptySource:
		return errpos(err.Col, "no function")
	case MalformedSignature:
		return errpos(err.Col, "brackets or braces missing or in wrong order in "+q)
	case ArityMismatch:
		return errpos(err.Col, "expected function to have "+strconv.Itoa(err.Want)+" argument"+plural(err.Want)+", found "+strconv.Itoa(err.Got))
	case UnknownIdentifier:
		return errpos(err.Col, "unknown identifier "+q)
	case InvalidNumber:
		return errpos(err.Col, "invalid number "+q)
	case UnexpectedToken:
		return errpos(err.Col, "unexpected token "+q)
	case ExpectedOperator:
		return errpos(err.Col, "expected an operator before "+q)
	case EmptyGroup:
		return errpos(err.Col, "no expression in "+q)
	case DanglingOperator:
		return errpos(err.Col, "operator needs an operand on either side in "+q)
	case UnclosedGroup:
		return errpos(err.Col, "open bracket with no close bracket in "+q)
	case TooDeep:
		return errpos(err.Col, "brackets nested deeper than "+strconv.Itoa(err.Want))
	default:
		return errpos(err.Col, err.Kind.String()+" "+q)
	}
}

func (err *ParseError) Pos() int {
	return err.Col
}

// Is reports whether target is the ErrorKind of err.
func (err *ParseError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == err.Kind
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position of the error in the source.
	Pos() int
}

var _ InputError = (*ParseError)(nil)

// ArgCountError is an error calling a compiled function with the wrong number
// of arguments.
type ArgCountError struct {
	// Want is the arity of the function.
	Want int
	// Got is the number of arguments passed.
	Got int
}

func (err *ArgCountError) Error() string {
	return "cannot call function of " + strconv.Itoa(err.Want) + " argument" + plural(err.Want) + " with " + strconv.Itoa(err.Got)
}

// ErrDivideByZero is the error from evaluating an integer division by zero.
// Floating-point division by zero is not an error; it produces an infinity or
// NaN.
var ErrDivideByZero = errors.New("script: integer division by zero")
