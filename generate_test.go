package gocalc

import (
	"math/rand"
	"strconv"
	"testing"
)

func depth(e Expr) int {
	b, ok := e.(*BinaryOp)
	if !ok {
		return 0
	}
	l, r := depth(b.Left), depth(b.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func TestGenerate(t *testing.T) {
	g := Generator{
		MaxNumeral: 9,
		Ops:        []Operator{Add, Mul},
		Rand:       rand.New(rand.NewSource(3)),
	}
	if _, ok := g.Generate(0).(Numeral); !ok {
		t.Error("depth 0 should give a numeral")
	}
	for i := 0; i < 100; i++ {
		node := g.GenerateOp(4)
		if d := depth(node); d < 1 || d > 4 {
			t.Errorf("depth %d out of range for %s", d, node)
		}
		if err := Validate(node); err != nil {
			t.Error(err)
		}
		check(t, node, g)
	}
}

func check(t *testing.T, e Expr, g Generator) {
	switch n := e.(type) {
	case Numeral:
		v, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil || v < 0 || v > g.MaxNumeral {
			t.Errorf("numeral %q out of range", string(n))
		}
	case *BinaryOp:
		if n.Op != Add && n.Op != Mul {
			t.Errorf("unexpected operator %v", n.Op)
		}
		check(t, n.Left, g)
		check(t, n.Right, g)
	}
}
