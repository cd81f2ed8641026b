package abacus

import (
	"math/big"
	"testing"
)

func mustFloat(t *testing.T, s string) *big.Float {
	t.Helper()
	r, _, err := big.ParseFloat(s, 10, 128, big.ToNearestEven)
	if err != nil {
		t.Fatalf("bad float %q: %v", s, err)
	}
	return r
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		x    string
		want string
	}{
		{"zero", "0", "0"},
		{"int", "4", "4"},
		{"negint", "-3", "-3"},
		{"bigint", "1208925819614629174706176", "1208925819614629174706176"},
		{"half", "2.5", "2.5"},
		{"neghalf", "-2.5", "-2.5"},
		{"tenth", "0.1", "0.1"},
		{"exponent", "1e2", "100"},
		{"trim", "2.1234567890123", "2.123456789"},
		{"round", "0.12345678996", "0.12345679"},
		{"tiny", "0.00000000000004", "0"},
		{"negtiny", "-0.00000000000004", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Format(mustFloat(t, c.x)); got != c.want {
				t.Errorf("wrong format for %s: want %q, got %q", c.x, c.want, got)
			}
		})
	}
}

func TestFormatInf(t *testing.T) {
	if got := Format(new(big.Float).SetInf(false)); got != "∞" {
		t.Errorf("wrong format for +inf: got %q", got)
	}
	if got := Format(new(big.Float).SetInf(true)); got != "-∞" {
		t.Errorf("wrong format for -inf: got %q", got)
	}
}

func TestFormatComputedInteger(t *testing.T) {
	// A value that is mathematically an integer renders as one even when it
	// was computed through division.
	r, err := EvalString("10/2")
	if err != nil {
		t.Fatalf("10/2 failed to evaluate: %v", err)
	}
	if got := Format(r); got != "5" {
		t.Errorf("wrong format for 10/2: want 5, got %q", got)
	}
}
