package abacus

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals. Functions may but generally should
// not look up variables. The function should set r to its result and should
// not use the value of r otherwise.
type Func interface {
	// Call evaluates the function. The function arguments are passed in args.
	// The function must set r to its result and should not use the value of r
	// otherwise. args has a length for which CanCall returned true. Call may
	// modify the elements of args.
	Call(ctx *Context, args []*big.Float, r *big.Float) error

	// CanCall returns whether the function can be called with n arguments.
	// This controls how the expression parser handles instances of this
	// function:
	//
	// 	1.	If a parenthesized list of n > 0 expressions follows a function,
	//		the parser treats it as an argument list if CanCall(n).
	//
	// 	2.	If a bare term follows a function and CanCall(1), then the parser
	//		treats the term as an argument to the function. E.g., "sin x" is
	//		parsed as "sin(x)". (If !CanCall(1), then it is a multiplication.)
	CanCall(n int) bool
}

// globalfuncs is the fixed default function table. It is never modified after
// initialization, so nothing an expression contains can extend the set of
// callable names.
var globalfuncs = map[string]Func{
	"exp":  Monadic(bigfloat.Exp),
	"ln":   lnfn{},
	"log":  logfn{},
	"sqrt": sqrtfn{},

	// Trigonometry computes through float64. The bridge carries more than
	// the ten decimal places a result renders with.
	"sin":   realfn{"sin", math.Sin, nil},
	"cos":   realfn{"cos", math.Cos, nil},
	"tan":   realfn{"tan", math.Tan, nil},
	"asin":  realfn{"asin", math.Asin, unitInterval},
	"acos":  realfn{"acos", math.Acos, unitInterval},
	"atan":  realfn{"atan", math.Atan, nil},
	"sinh":  realfn{"sinh", math.Sinh, nil},
	"cosh":  realfn{"cosh", math.Cosh, nil},
	"tanh":  realfn{"tanh", math.Tanh, nil},
	"asinh": realfn{"asinh", math.Asinh, nil},
	"acosh": realfn{"acosh", math.Acosh, func(x float64) bool { return x >= 1 }},
	"atanh": realfn{"atanh", math.Atanh, func(x float64) bool { return -1 < x && x < 1 }},

	"fact":      factfn{},
	"factorial": factfn{},
	"abs":       Monadic((*big.Float).Abs),
	"round":     intval{"round", roundInt},
	"ceil":      intval{"ceil", ceilInt},
	"floor":     intval{"floor", floorInt},
	"deg":       anglefn{"deg", true},
	"rad":       anglefn{"rad", false},

	// constants
	"pi": pifn,
	"π":  pifn,
	"e": Niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

var pifn = Niladic(bigfloat.Pi)

func unitInterval(x float64) bool { return -1 <= x && x <= 1 }

// copyfloat copies an argument for an error report, since the evaluator may
// reuse argument values.
func copyfloat(x *big.Float) *big.Float {
	return new(big.Float).Copy(x)
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(ctx *Context, args []*big.Float, r *big.Float) (err error) {
	in := args[0]
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err = p.(error) // panic if not error
		if errors.As(err, new(big.ErrNaN)) || errors.As(err, new(*DomainError)) {
			return
		}
		panic(err)
	}()
	r.SetPrec(ctx.Prec())
	m.f(r, in)
	return nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. f must set out to its
// result, to the precision of in; its return value is always ignored. If f is
// called on an argument outside f's domain, it should panic with an error of
// type big.ErrNaN, or that unwraps to it.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type niladic struct {
	f func(out *big.Float) *big.Float
}

func (n niladic) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	r.SetPrec(ctx.Prec())
	n.f(r)
	return nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func. f must set out to its result; its return
// value is always ignored. Unlike Monadic, the wrapped function is expected
// never to panic.
func Niladic(f func(out *big.Float) *big.Float) Func {
	return niladic{f}
}

// realfn bridges a float64 function into a Func. ok reports whether an
// argument is in the function's domain; nil means all reals.
type realfn struct {
	name string
	f    func(float64) float64
	ok   func(float64) bool
}

func (m realfn) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	x, _ := args[0].Float64()
	if m.ok != nil && !m.ok(x) {
		return &DomainError{X: copyfloat(args[0]), Func: m.name}
	}
	y := m.f(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return &DomainError{X: copyfloat(args[0]), Func: m.name}
	}
	r.SetPrec(ctx.Prec()).SetFloat64(y)
	return nil
}

func (m realfn) CanCall(n int) bool {
	return n == 1
}

type lnfn struct{}

func (lnfn) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	if args[0].Sign() <= 0 {
		return &DomainError{X: copyfloat(args[0]), Func: "ln"}
	}
	r.SetPrec(ctx.Prec())
	bigfloat.Log(r, args[0])
	return nil
}

func (lnfn) CanCall(n int) bool {
	return n == 1
}

// logfn is the common logarithm, or the logarithm in the base given by the
// second argument when called with two.
type logfn struct{}

func (logfn) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	x := args[0]
	if x.Sign() <= 0 {
		return &DomainError{X: copyfloat(x), Func: "log"}
	}
	base := new(big.Float).SetPrec(ctx.Prec()).SetInt64(10)
	if len(args) == 2 {
		one := new(big.Float).SetInt64(1)
		if args[1].Sign() <= 0 || args[1].Cmp(one) == 0 {
			return &DomainError{X: copyfloat(args[1]), Arg: 2, Func: "log"}
		}
		base.Set(args[1])
	}
	r.SetPrec(ctx.Prec())
	bigfloat.Log(r, x)
	bigfloat.Log(base, base)
	r.Quo(r, base)
	return nil
}

func (logfn) CanCall(n int) bool {
	return n == 1 || n == 2
}

type sqrtfn struct{}

func (sqrtfn) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	if args[0].Sign() < 0 {
		return &DomainError{X: copyfloat(args[0]), Func: "sqrt"}
	}
	r.SetPrec(ctx.Prec())
	r.Sqrt(args[0])
	return nil
}

func (sqrtfn) CanCall(n int) bool {
	return n == 1
}

// maxFactorial bounds factorial arguments so that a single call cannot pin
// the session computing a gigantic product.
const maxFactorial = 100000

type factfn struct{}

func (factfn) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	x := args[0]
	if x.Sign() < 0 || !x.IsInt() {
		return &DomainError{X: copyfloat(x), Func: "fact"}
	}
	z, _ := x.Int(nil)
	if !z.IsInt64() || z.Int64() > maxFactorial {
		return &DomainError{X: copyfloat(x), Func: "fact"}
	}
	r.SetPrec(ctx.Prec()).SetInt(new(big.Int).MulRange(1, z.Int64()))
	return nil
}

func (factfn) CanCall(n int) bool {
	return n == 1
}

// intval rounds its argument to an integer with an exact rule, so that large
// values keep all their digits rather than passing through float64.
type intval struct {
	name string
	f    func(x *big.Float) *big.Int
}

func (m intval) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	if args[0].IsInf() {
		return &DomainError{X: copyfloat(args[0]), Func: m.name}
	}
	r.SetPrec(ctx.Prec()).SetInt(m.f(args[0]))
	return nil
}

func (m intval) CanCall(n int) bool {
	return n == 1
}

var bigOne = big.NewInt(1)

func ceilInt(x *big.Float) *big.Int {
	z, acc := x.Int(nil)
	if acc == big.Below {
		z.Add(z, bigOne)
	}
	return z
}

func floorInt(x *big.Float) *big.Int {
	z, acc := x.Int(nil)
	if acc == big.Above {
		z.Sub(z, bigOne)
	}
	return z
}

// roundInt rounds to nearest with halves away from zero.
func roundInt(x *big.Float) *big.Int {
	t := new(big.Float).SetPrec(x.Prec() + 2).Set(x)
	half := big.NewFloat(0.5)
	if x.Signbit() {
		half.Neg(half)
	}
	t.Add(t, half)
	z, _ := t.Int(nil)
	return z
}

// anglefn converts between radians and degrees at the context's precision.
type anglefn struct {
	name  string
	todeg bool
}

func (m anglefn) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	pi := bigfloat.Pi(new(big.Float).SetPrec(ctx.Prec() + 8))
	scale := new(big.Float).SetPrec(ctx.Prec() + 8).SetInt64(180)
	r.SetPrec(ctx.Prec())
	if m.todeg {
		r.Mul(args[0], scale)
		r.Quo(r, pi)
	} else {
		r.Mul(args[0], pi)
		r.Quo(r, scale)
	}
	return nil
}

func (m anglefn) CanCall(n int) bool {
	return n == 1
}

// DomainError is an error returned when a function is called on arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}
