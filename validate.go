package gocalc

// Validate checks that node is a well formed tree: every operator is one of
// the five recognized symbols and every leaf is a non-empty run of ASCII
// digits. Node itself must be a complete binary operation; anything else is a
// caller bug and Validate panics with a *PreconditionViolation.
func Validate(node Expr) error {
	b, ok := node.(*BinaryOp)
	if !ok || b == nil || b.Left == nil || b.Right == nil {
		panic(&PreconditionViolation{Msg: "invalid expression: want (operator operand operand), got " + Lisp(node)})
	}
	if !valid(b) {
		return &ValidationError{Node: b}
	}
	return nil
}

func valid(node Expr) bool {
	switch n := node.(type) {
	case Numeral:
		return isNumeral(string(n))
	case *BinaryOp:
		if n == nil || !IsOperator(rune(n.Op)) {
			return false
		}
		return valid(n.Left) && valid(n.Right)
	}
	return false
}
