package abacus

import (
	"math/big"
	"strings"
)

// displayScale is the number of decimal places a result keeps. Rounding here
// hides the noise that binary floats introduce in results like 0.1+0.2.
const displayScale = 10

// Format renders an evaluation result for a calculator display. Values that
// are mathematically integers render with no fractional part, no matter how
// they were computed; other values are rounded to ten decimal places with
// trailing zeros dropped.
//
// Format applies only to full-expression results. Single-function application
// through Apply reports the raw computed value instead.
func Format(x *big.Float) string {
	if x.IsInf() {
		if x.Signbit() {
			return "-∞"
		}
		return "∞"
	}
	if x.IsInt() {
		return x.Text('f', 0)
	}
	s := x.Text('f', displayScale)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
