package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrWantNumber     = errors.New("wanted number")
	ErrWantOperator   = errors.New("wanted operator")
	ErrWantBracket    = errors.New("wanted bracket")
	ErrUnexpectedEnd  = errors.New("unexpected end of expression")
	ErrUnbalanced     = errors.New("unbalanced brackets")
	ErrTooDeep        = errors.New("expression nested too deeply")
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("cannot divide by zero")
)

// ParseError reports an expression that could not be broken into tokens.
type ParseError struct {
	Expr string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse expression %q: %v", e.Expr, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a tree whose shape or symbols are not valid.
type ValidationError struct {
	Node Expr
}

func (e *ValidationError) Error() string {
	return "could not parse, tokens = " + Lisp(e.Node)
}

// UnknownOperatorError is returned by Eval for an operator it cannot apply.
type UnknownOperatorError struct {
	Op Operator
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("could not interpret operator: %q", rune(e.Op))
}

// PreconditionViolation is the panic value used when Validate is called on
// something that is not a complete binary operation.
type PreconditionViolation struct {
	Msg string
}

func (e *PreconditionViolation) Error() string {
	return "gocalc: precondition violated: " + e.Msg
}

// wantError describes the token found where another was expected.
type wantError struct {
	want  error
	found string
}

func (e *wantError) Error() string {
	return fmt.Sprintf("%v, found %q", e.want, e.found)
}

func (e *wantError) Unwrap() error {
	return e.want
}
