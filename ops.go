package gocalc

import (
	"errors"
	"math/big"
)

type opFunc func(a, b *big.Int) (*big.Int, error)

var ops map[Operator]opFunc

func init() {
	ops = make(map[Operator]opFunc)
	ops[Add] = doAdd
	ops[Sub] = doSub
	ops[Mul] = doMul
	ops[Div] = doDiv
	ops[Mod] = doMod
}

var errNilExpr = errors.New("missing operand")

// Eval reduces node to an integer. It does not require node to have been
// validated; malformed leaves and unknown operators are reported as errors.
func Eval(node Expr) (*big.Int, error) {
	switch n := node.(type) {
	case Numeral:
		v, ok := new(big.Int).SetString(string(n), 10)
		if !ok || !isNumeral(string(n)) {
			return nil, &ParseError{Expr: string(n), Err: ErrWantNumber}
		}
		return v, nil
	case *BinaryOp:
		if n == nil {
			return nil, errNilExpr
		}
		a, err := Eval(n.Left)
		if err != nil {
			return nil, err
		}
		b, err := Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return apply(n.Op, a, b)
	}
	return nil, errNilExpr
}

func apply(op Operator, a, b *big.Int) (*big.Int, error) {
	fn, ok := ops[op]
	if !ok {
		return nil, &UnknownOperatorError{Op: op}
	}
	if (op == Div || op == Mod) && b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return fn(a, b)
}

func doAdd(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Add(a, b), nil
}

func doSub(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(a, b), nil
}

func doMul(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(a, b), nil
}

func doDiv(a, b *big.Int) (*big.Int, error) {
	q, _ := floorQuoRem(a, b)
	return q, nil
}

func doMod(a, b *big.Int) (*big.Int, error) {
	_, m := floorQuoRem(a, b)
	return m, nil
}

// floorQuoRem rounds the quotient toward negative infinity, so the remainder
// takes the sign of b.
func floorQuoRem(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}
