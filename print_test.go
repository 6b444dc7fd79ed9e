package gocalc

import "testing"

func TestStrings(t *testing.T) {
	exprs := []Expr{
		Numeral("42"),
		&BinaryOp{Left: Numeral("2"), Right: Numeral("3"), Op: Mul},
		&BinaryOp{
			Left:  &BinaryOp{Left: Numeral("45"), Right: Numeral("66"), Op: Mul},
			Right: &BinaryOp{Left: Numeral("66"), Right: Numeral("11"), Op: Mul},
			Op:    Add,
		},
		&BinaryOp{
			Left: Numeral("1"),
			Right: &BinaryOp{
				Left:  Numeral("2"),
				Right: &BinaryOp{Left: Numeral("3"), Right: Numeral("4"), Op: Mod},
				Op:    Div,
			},
			Op: Sub,
		},
	}
	lisp := []string{
		"42",
		"(* 2 3)",
		"(+ (* 45 66) (* 66 11))",
		"(- 1 (/ 2 (% 3 4)))",
	}
	infix := []string{
		"42",
		"(2*3)",
		"((45*66)+(66*11))",
		"(1-(2/(3%4)))",
	}
	for i, x := range exprs {
		if actual := Lisp(x); actual != lisp[i] {
			t.Errorf("expr %d: expected %s got %s", i, lisp[i], actual)
		}
		if actual := x.String(); actual != lisp[i] {
			t.Errorf("expr %d: expected String() %s got %s", i, lisp[i], actual)
		}
		if actual := Infix(x); actual != infix[i] {
			t.Errorf("expr %d: expected %s got %s", i, infix[i], actual)
		}
	}
}

func TestStringsNil(t *testing.T) {
	var b *BinaryOp
	if s := b.String(); s != "nil" {
		t.Errorf("expected nil got %s", s)
	}
	if s := Lisp(nil); s != "nil" {
		t.Errorf("expected nil got %s", s)
	}
	if s := Infix(&BinaryOp{Op: Add, Left: Numeral("1")}); s != "(1+nil)" {
		t.Errorf("expected (1+nil) got %s", s)
	}
}
