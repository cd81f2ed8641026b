package abacus

import (
	"strconv"
	"strings"
)

// Convert parses value as an integer written in base from and renders it in
// base to. The supported bases are 2, 8, 10, and 16. Output carries the
// base's canonical prefix (0b, 0o, 0x), with plain digits for decimal; the
// sign of a negative value comes before the prefix.
func Convert(value string, from, to int) (string, error) {
	if err := checkBase(from); err != nil {
		return "", err
	}
	if err := checkBase(to); err != nil {
		return "", err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), from, 64)
	if err != nil {
		return "", &ConvError{Value: value, Base: from, Err: err}
	}
	return formatBase(n, to), nil
}

func checkBase(base int) error {
	switch base {
	case 2, 8, 10, 16:
		return nil
	}
	return &ConvError{Base: base}
}

func formatBase(n int64, base int) string {
	var prefix string
	switch base {
	case 2:
		prefix = "0b"
	case 8:
		prefix = "0o"
	case 16:
		prefix = "0x"
	default:
		return strconv.FormatInt(n, 10)
	}
	s := strconv.FormatInt(n, base)
	if n < 0 {
		// Sign before prefix, and no overflow on the smallest int64.
		return "-" + prefix + s[1:]
	}
	return prefix + s
}

// ConvError is an error from numeral base conversion: either an unsupported
// base, or a value with digits invalid for its declared base.
type ConvError struct {
	// Value is the input that failed to parse. Empty if the base itself was
	// the problem.
	Value string
	// Base is the offending base.
	Base int
	// Err is the underlying parse error, if any.
	Err error
}

func (err *ConvError) Error() string {
	if err.Value == "" {
		return "unsupported base " + strconv.Itoa(err.Base) + " (want 2, 8, 10, or 16)"
	}
	return "cannot read " + strconv.Quote(err.Value) + " as base-" + strconv.Itoa(err.Base) + " integer"
}

func (err *ConvError) Unwrap() error {
	return err.Err
}
