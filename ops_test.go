package abacus

import (
	"testing"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name     string
		op       string
		operands []float64
		want     float64
	}{
		{"plus-symbol", "+", []float64{2, 3}, 5},
		{"plus-word", "add", []float64{2, 3}, 5},
		{"plus-alias", "plus", []float64{2, 3}, 5},
		{"minus-symbol", "-", []float64{5, 3}, 2},
		{"minus-word", "sub", []float64{5, 3}, 2},
		{"minus-alias", "minus", []float64{5, 3}, 2},
		{"times-symbol", "*", []float64{4, 5}, 20},
		{"times-word", "mul", []float64{4, 5}, 20},
		{"times-alias", "times", []float64{4, 5}, 20},
		{"divide-symbol", "/", []float64{10, 4}, 2.5},
		{"divide-word", "div", []float64{10, 4}, 2.5},
		{"divide-alias", "divide", []float64{10, 4}, 2.5},
		{"power-symbol", "^", []float64{2, 10}, 1024},
		{"power-word", "pow", []float64{2, 10}, 1024},
		{"power-alias", "power", []float64{2, 10}, 1024},
		{"power-case", "POW", []float64{2, 10}, 1024},
		{"sqrt", "sqrt", []float64{9}, 3},
		{"sqrt-alias", "root", []float64{16}, 4},
		{"sqrt-case", "Sqrt", []float64{25}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Calculate(c.op, c.operands...)
			if err != nil {
				t.Fatalf("Calculate(%q, %v) failed: %v", c.op, c.operands, err)
			}
			if got != c.want {
				t.Errorf("Calculate(%q, %v) = %g, want %g", c.op, c.operands, got, c.want)
			}
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name     string
		op       string
		operands []float64
	}{
		{"div-zero", "/", []float64{1, 0}},
		{"sqrt-neg", "sqrt", []float64{-1}},
		{"binary-arity", "+", []float64{1}},
		{"binary-arity-3", "*", []float64{1, 2, 3}},
		{"sqrt-arity", "sqrt", []float64{1, 2}},
		{"unknown", "bogus", []float64{1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Calculate(c.op, c.operands...)
			if err == nil {
				t.Errorf("Calculate(%q, %v) = %g without error", c.op, c.operands, got)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	if r, err := Div(7, 2); err != nil || r != 3.5 {
		t.Errorf("Div(7, 2) = %g, %v", r, err)
	}
	if r, err := Div(1, 0); err == nil {
		t.Errorf("Div(1, 0) = %g without error", r)
	}
	if r, err := Div(-1, 0); err == nil {
		t.Errorf("Div(-1, 0) = %g without error", r)
	}
}

func TestSqrtNegative(t *testing.T) {
	if r, err := Sqrt(-4); err == nil {
		t.Errorf("Sqrt(-4) = %g without error", r)
	}
}
