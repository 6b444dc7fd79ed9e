package gocalc

import (
	"strings"
)

// Operator is one of the binary arithmetic symbols.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
	Mod Operator = '%'
)

const operators = `+-*/%`

// IsOperator reports whether r is one of the recognized operator symbols.
func IsOperator(r rune) bool {
	return strings.ContainsRune(operators, r)
}

func (o Operator) String() string {
	return string(rune(o))
}

// An Expr is a node in an expression tree. It is either a Numeral or a
// *BinaryOp.
type Expr interface {
	// String returns the prefix (Lisp) form of the expression.
	String() string

	expr()
}

// A Numeral is a non-negative integer literal kept as its digit string.
type Numeral string

func (Numeral) expr() {}

func (n Numeral) String() string {
	return string(n)
}

// A BinaryOp applies Op to the values of Left and Right.
type BinaryOp struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (*BinaryOp) expr() {}

func (b *BinaryOp) String() string {
	return Lisp(b)
}

func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
