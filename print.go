package gocalc

import (
	"bytes"
	"fmt"
)

// Lisp renders node in prefix form, e.g. "(+ (* 45 66) (* 66 11))".
func Lisp(node Expr) string {
	var buf bytes.Buffer
	writeLisp(&buf, node)
	return buf.String()
}

func writeLisp(buf *bytes.Buffer, node Expr) {
	switch n := node.(type) {
	case Numeral:
		buf.WriteString(string(n))
	case *BinaryOp:
		if n == nil {
			buf.WriteString("nil")
			return
		}
		fmt.Fprintf(buf, "(%c ", rune(n.Op))
		writeLisp(buf, n.Left)
		buf.WriteByte(' ')
		writeLisp(buf, n.Right)
		buf.WriteByte(')')
	default:
		buf.WriteString("nil")
	}
}

// Infix renders node in the bracketed infix form read by Tokenize, e.g.
// "((45*66)+(66*11))".
func Infix(node Expr) string {
	var buf bytes.Buffer
	writeInfix(&buf, node)
	return buf.String()
}

func writeInfix(buf *bytes.Buffer, node Expr) {
	switch n := node.(type) {
	case Numeral:
		buf.WriteString(string(n))
	case *BinaryOp:
		if n == nil {
			buf.WriteString("nil")
			return
		}
		buf.WriteByte('(')
		writeInfix(buf, n.Left)
		buf.WriteByte(byte(n.Op))
		writeInfix(buf, n.Right)
		buf.WriteByte(')')
	default:
		buf.WriteString("nil")
	}
}
