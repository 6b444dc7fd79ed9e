package gocalc

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var prefixLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Op", Pattern: `[-+*/%]`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type prefixOperand struct {
	Num  *string     `parser:"@Number"`
	Node *prefixNode `parser:"| @@"`
}

type prefixNode struct {
	Op    string         `parser:"\"(\" @Op"`
	Left  *prefixOperand `parser:"@@"`
	Right *prefixOperand `parser:"@@ \")\""`
}

var prefixParser = participle.MustBuild[prefixOperand](
	participle.Lexer(prefixLexer),
	participle.Elide("Whitespace"),
)

// ParsePrefix reads the form produced by Lisp back into a tree. A bare
// number yields a Numeral.
func ParsePrefix(s string) (Expr, error) {
	v, err := prefixParser.ParseString("", s)
	if err != nil {
		return nil, &ParseError{Expr: s, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}
	return v.toExpr(), nil
}

func (o *prefixOperand) toExpr() Expr {
	if o.Num != nil {
		return Numeral(*o.Num)
	}
	return o.Node.toExpr()
}

func (n *prefixNode) toExpr() *BinaryOp {
	return &BinaryOp{
		Op:    Operator(n.Op[0]),
		Left:  n.Left.toExpr(),
		Right: n.Right.toExpr(),
	}
}
