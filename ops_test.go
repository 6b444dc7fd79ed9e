package gocalc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.calc")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no test files")
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := os.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		failed := false
		scanner := bufio.NewScanner(bytes.NewReader(b))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			v, err := Parse(line)
			if err != nil {
				b, err2 := os.ReadFile(fn[:len(fn)-4] + "err")
				if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
					t.Errorf("%s: %v", fn, err)
				}
				failed = true
				break
			}
			fmt.Fprintln(&buf, v)
		}
		if failed {
			continue
		}
		if _, err := os.Stat(fn[:len(fn)-4] + "err"); err == nil {
			t.Errorf("%s: want error but succeeded", fn)
			continue
		}
		got := buf.String()
		b, err = os.ReadFile(fn[:len(fn)-4] + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		a, b int64
		op   Operator
		want int64
	}{
		{a: 3, b: 4, op: Add, want: 7},
		{a: 81, b: 4, op: Sub, want: 77},
		{a: 4, b: 81, op: Sub, want: -77},
		{a: 45, b: 66, op: Mul, want: 2970},
		{a: 10, b: 3, op: Div, want: 3},
		{a: 10, b: 3, op: Mod, want: 1},
		{a: -10, b: 3, op: Div, want: -4},
		{a: -10, b: 3, op: Mod, want: 2},
		{a: 10, b: -3, op: Div, want: -4},
		{a: 10, b: -3, op: Mod, want: -2},
		{a: -9, b: 3, op: Div, want: -3},
		{a: -9, b: 3, op: Mod, want: 0},
	}
	for _, test := range tests {
		got, err := apply(test.op, big.NewInt(test.a), big.NewInt(test.b))
		if err != nil {
			t.Errorf("%d %v %d: %v", test.a, test.op, test.b, err)
			continue
		}
		if got.Int64() != test.want {
			t.Errorf("want %d for %d %v %d but got %v", test.want, test.a, test.op, test.b, got)
		}
	}
}

func TestParseAgreesWithArithmetic(t *testing.T) {
	for a := int64(0); a < 30; a++ {
		for b := int64(0); b < 30; b++ {
			want := map[Operator]int64{
				Add: a + b,
				Sub: a - b,
				Mul: a * b,
			}
			if b != 0 {
				want[Mod] = a % b
				want[Div] = a / b
			}
			for op, w := range want {
				expr := fmt.Sprintf("(%d%v%d)", a, op, b)
				got, err := Parse(expr)
				if err != nil {
					t.Fatalf("%s: %v", expr, err)
				}
				if got.Int64() != w {
					t.Errorf("want %d for %s but got %v", w, expr, got)
				}
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, input := range []string{"(5/0)", "(5%0)", "((1+1)/(2-2))", "(0%(0*7))"} {
		_, err := Parse(input)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("want ErrDivisionByZero for %q but got %v", input, err)
		}
	}
}

func TestEvalUnknownOperator(t *testing.T) {
	node := &BinaryOp{Op: '^', Left: Numeral("2"), Right: Numeral("3")}
	_, err := Eval(node)
	var uerr *UnknownOperatorError
	if !errors.As(err, &uerr) {
		t.Fatalf("want *UnknownOperatorError but got %v", err)
	}
	if uerr.Op != '^' {
		t.Errorf("want operator '^' but got %q", rune(uerr.Op))
	}

	nested := &BinaryOp{Op: Add, Left: Numeral("1"), Right: node}
	if _, err := Eval(nested); !errors.As(err, &uerr) {
		t.Errorf("want *UnknownOperatorError for nested node but got %v", err)
	}
}

func TestEvalMalformedNumeral(t *testing.T) {
	for _, n := range []Numeral{"", "+5", "-5", "1a", " 1"} {
		_, err := Eval(&BinaryOp{Op: Add, Left: n, Right: Numeral("1")})
		if !errors.Is(err, ErrWantNumber) {
			t.Errorf("want ErrWantNumber for %q but got %v", string(n), err)
		}
	}
}

func TestEvalNil(t *testing.T) {
	if _, err := Eval(nil); err == nil {
		t.Error("want error for nil expression")
	}
	if _, err := Eval(&BinaryOp{Op: Add, Left: Numeral("1")}); err == nil {
		t.Error("want error for missing operand")
	}
}
