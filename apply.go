package abacus

import (
	"errors"
	"math"
	"strconv"
)

// unaryops is the fixed table behind Apply: the scientific keypad's
// one-argument keys. Like the expression function table, it never grows at
// runtime.
var unaryops = map[string]func(float64) (float64, error){
	"sin":  total(math.Sin),
	"cos":  total(math.Cos),
	"tan":  total(math.Tan),
	"asin": within(math.Asin, -1, 1),
	"acos": within(math.Acos, -1, 1),
	"atan": total(math.Atan),
	"sinh": total(math.Sinh),
	"cosh": total(math.Cosh),
	"tanh": total(math.Tanh),
	"log": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, errors.New("logarithm of non-positive number")
		}
		return math.Log10(x), nil
	},
	"ln": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, errors.New("logarithm of non-positive number")
		}
		return math.Log(x), nil
	},
	"sqrt":   Sqrt,
	"square": func(x float64) (float64, error) { return x * x, nil },
	"cube":   func(x float64) (float64, error) { return x * x * x, nil },
	"reciprocal": func(x float64) (float64, error) {
		// 1/0 must fail explicitly; the division-by-zero guard applies here
		// the same as everywhere else.
		return Div(1, x)
	},
	"factorial": applyFactorial,
	"abs":       total(math.Abs),
	"exp":       total(math.Exp),
	"degrees":   total(func(x float64) float64 { return x * 180 / math.Pi }),
	"radians":   total(func(x float64) float64 { return x * math.Pi / 180 }),
	"ceil":      total(math.Ceil),
	"floor":     total(math.Floor),
}

func total(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) { return f(x), nil }
}

func within(f func(float64) float64, lo, hi float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x < lo || x > hi {
			return 0, errors.New("argument outside domain")
		}
		return f(x), nil
	}
}

func applyFactorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, errors.New("factorial of negative or non-integer number")
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
		if math.IsInf(r, 0) {
			return 0, errors.New("factorial result too large")
		}
	}
	return r, nil
}

// Apply applies a named unary operation to a single entered value and returns
// the string form of the raw result. Unlike full-expression evaluation, the
// result is not normalized.
//
// Apply is total: an unknown name, an unparseable value, or an argument
// outside the operation's domain all come back as an error string embedding
// the cause, never as a panic or a silent infinity.
func Apply(name, value string) string {
	f, ok := unaryops[name]
	if !ok {
		return "error: unknown function: " + strconv.Quote(name)
	}
	x, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "error: " + err.Error()
	}
	y, err := f(x)
	if err != nil {
		return "error: " + err.Error()
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return "error: result out of range"
	}
	return strconv.FormatFloat(y, 'g', -1, 64)
}
