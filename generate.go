package gocalc

import (
	"math/rand"
	"strconv"
)

// DefaultMaxNumeral is the largest literal generated when
// Generator.MaxNumeral is 0.
const DefaultMaxNumeral = 100

// A Generator generates random expression trees.
type Generator struct {
	// MaxNumeral bounds the generated literals (inclusive).
	// If this is 0, DefaultMaxNumeral is used.
	MaxNumeral int64

	// Ops lists the allowed operators. If empty, all five are used.
	Ops []Operator

	// Rand is the source of randomness. If nil, the math/rand
	// top-level functions are used.
	Rand *rand.Rand
}

// Generate generates a random tree with a given maximum nesting depth.
// If maxDepth is 0, the result is a Numeral.
func (g *Generator) Generate(maxDepth int) Expr {
	if maxDepth == 0 || g.intn(maxDepth+1) == 0 {
		return g.randomNumeral()
	}
	return g.GenerateOp(maxDepth)
}

// GenerateOp is like Generate but always returns a binary operation, so the
// result can be rendered with Infix and read back by Tokenize.
func (g *Generator) GenerateOp(maxDepth int) *BinaryOp {
	if maxDepth < 1 {
		maxDepth = 1
	}
	ops := g.Ops
	if len(ops) == 0 {
		ops = []Operator{Add, Sub, Mul, Div, Mod}
	}
	return &BinaryOp{
		Op:    ops[g.intn(len(ops))],
		Left:  g.Generate(maxDepth - 1),
		Right: g.Generate(maxDepth - 1),
	}
}

func (g *Generator) randomNumeral() Numeral {
	limit := g.MaxNumeral
	if limit <= 0 {
		limit = DefaultMaxNumeral
	}
	var n int64
	if g.Rand != nil {
		n = g.Rand.Int63n(limit + 1)
	} else {
		n = rand.Int63n(limit + 1)
	}
	return Numeral(strconv.FormatInt(n, 10))
}

func (g *Generator) intn(n int) int {
	if g.Rand != nil {
		return g.Rand.Intn(n)
	}
	return rand.Intn(n)
}
