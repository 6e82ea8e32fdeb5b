package calc

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Texts of the Number tokens substituted for the constants e and π. Each is
// the shortest decimal that rounds to the nearest float64.
var (
	E  = constText(euler)
	Pi = constText(bigfloat.Pi)
)

func euler(out *big.Float) *big.Float {
	one := new(big.Float).SetPrec(out.Prec()).SetInt64(1)
	return bigfloat.Exp(out, one)
}

// constPrec is the working precision for computing constants. It leaves
// enough guard bits that rounding to float64 is correct.
const constPrec = 256

func constText(f func(out *big.Float) *big.Float) string {
	r := new(big.Float).SetPrec(constPrec)
	f(r)
	v, _ := r.Float64()
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// monadic is a function of one real.
type monadic func(x float64) (float64, error)

var funcs = map[string]monadic{
	fnSqrt: func(x float64) (float64, error) {
		// Negative arguments give NaN rather than an error.
		return math.Sqrt(x), nil
	},
	fnLn: func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{X: x, Func: fnLn}
		}
		return math.Log(x), nil
	},
	fnLog: func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{X: x, Func: fnLog}
		}
		return math.Log10(x), nil
	},
}

// dyadic is a binary operator.
type dyadic func(l, r float64) (float64, error)

func mul(l, r float64) (float64, error) {
	return l * r, nil
}

var binops = map[string]dyadic{
	opAdd: func(l, r float64) (float64, error) {
		return l + r, nil
	},
	opSub: func(l, r float64) (float64, error) {
		return l - r, nil
	},
	opMul:    mul,
	opNegMul: mul,
	opDiv: func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, &DomainError{X: r, Func: opDiv}
		}
		return l / r, nil
	},
	opPow: func(l, r float64) (float64, error) {
		return math.Pow(l, r), nil
	},
}

// DomainError is an error returned when an operator or function is applied
// to an argument outside its domain. It unwraps to ErrDivisionByZero for ÷
// and to ErrNonPositiveLog for ln and log.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is the operator or function.
	Func string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

func (err *DomainError) Unwrap() error {
	if err.Func == opDiv {
		return ErrDivisionByZero
	}
	return ErrNonPositiveLog
}
