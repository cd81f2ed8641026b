package abacus

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Basic arithmetic helpers. These are the leaf operations behind the standard
// keypad; the expression evaluator and Apply build on richer tables, but the
// helpers stay available for callers that already have operands in hand.

var errDivisionByZero = errors.New("division by zero is not allowed")

// Add returns a+b.
func Add(a, b float64) float64 { return a + b }

// Sub returns a-b.
func Sub(a, b float64) float64 { return a - b }

// Mul returns a*b.
func Mul(a, b float64) float64 { return a * b }

// Div returns a/b. Dividing by zero is an error, not an infinity.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivisionByZero
	}
	return a / b, nil
}

// Power returns a raised to b.
func Power(a, b float64) float64 { return math.Pow(a, b) }

// Sqrt returns the square root of a. Negative arguments are an error.
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, errors.New("cannot take square root of negative number")
	}
	return math.Sqrt(a), nil
}

// Calculate dispatches an operation by name. Binary operations take two
// operands; sqrt takes one. Each operation answers to the symbol and a couple
// of spelled-out aliases, e.g. "+", "add", and "plus" are the same operation.
func Calculate(op string, operands ...float64) (float64, error) {
	op = strings.ToLower(op)
	binary := func() (float64, float64, error) {
		if len(operands) != 2 {
			return 0, 0, fmt.Errorf("operation %q needs 2 operands, got %d", op, len(operands))
		}
		return operands[0], operands[1], nil
	}
	switch op {
	case "+", "add", "plus":
		a, b, err := binary()
		if err != nil {
			return 0, err
		}
		return Add(a, b), nil
	case "-", "sub", "minus":
		a, b, err := binary()
		if err != nil {
			return 0, err
		}
		return Sub(a, b), nil
	case "*", "mul", "times":
		a, b, err := binary()
		if err != nil {
			return 0, err
		}
		return Mul(a, b), nil
	case "/", "div", "divide":
		a, b, err := binary()
		if err != nil {
			return 0, err
		}
		return Div(a, b)
	case "^", "pow", "power":
		a, b, err := binary()
		if err != nil {
			return 0, err
		}
		return Power(a, b), nil
	case "sqrt", "root":
		if len(operands) != 1 {
			return 0, fmt.Errorf("operation %q needs 1 operand, got %d", op, len(operands))
		}
		return Sqrt(operands[0])
	default:
		return 0, fmt.Errorf("unknown operation: %q", op)
	}
}
