package arith

import (
	"fmt"
	"math"
	"math/big"
)

// maxExactExponent bounds the integer powers computed exactly.
const maxExactExponent = 4096

// Pow returns base raised to exponent. Integer powers with a non-negative
// integer exponent are exact.
func Pow(base, exponent *big.Float) (*big.Float, error) {
	if base.IsInt() && exponent.IsInt() {
		e, acc := exponent.Int64()
		if acc == big.Exact && e >= 0 && e <= maxExactExponent {
			b, _ := base.Int(nil)
			return new(big.Float).SetInt(new(big.Int).Exp(b, big.NewInt(e), nil)), nil
		}
	}
	b, _ := base.Float64()
	e, _ := exponent.Float64()
	if b == 0 && e < 0 {
		return nil, fmt.Errorf("%w: zero cannot be raised to a negative power", errDivisionByZero)
	}
	return finite(math.Pow(b, e), !math.IsInf(b, 0) && !math.IsInf(e, 0))
}

// Sqrt returns the square root of x.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, errMathDomain
	}
	return math.Sqrt(x), nil
}

// Exp returns e**x.
func Exp(x float64) (float64, error) {
	return finiteFloat(math.Exp(x), !math.IsInf(x, 0))
}

// Log returns the natural logarithm of x, or its logarithm to base if one
// is given.
func Log(x float64, base ...float64) (float64, error) {
	if len(base) > 1 {
		return 0, fmt.Errorf("log expects at most 2 arguments, got %d", len(base)+1)
	}
	if x <= 0 {
		return 0, errMathDomain
	}
	if len(base) == 0 {
		return math.Log(x), nil
	}
	switch b := base[0]; {
	case b <= 0:
		return 0, errMathDomain
	case b == 1:
		return 0, errDivisionByZero
	default:
		return math.Log(x) / math.Log(b), nil
	}
}

// Log10 returns the base 10 logarithm of x.
func Log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, errMathDomain
	}
	return math.Log10(x), nil
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x float64) float64 {
	return math.Asinh(x)
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) (float64, error) {
	return finiteFloat(math.Sinh(x), !math.IsInf(x, 0))
}

// Pi returns π.
func Pi() float64 {
	return math.Pi
}

// TrueDiv returns dividend / divisor.
func TrueDiv(dividend, divisor *big.Float) (*big.Float, error) {
	if divisor.Sign() == 0 {
		return nil, errDivisionByZero
	}
	if dividend.IsInf() && divisor.IsInf() {
		return nil, errMathDomain
	}
	return new(big.Float).Quo(dividend, divisor), nil
}

// FloorDiv returns dividend / divisor rounded towards negative infinity.
func FloorDiv(dividend, divisor *big.Float) (*big.Float, error) {
	return floorDiv(dividend, divisor)
}

// CeilDiv returns dividend / divisor rounded towards positive infinity, so
// CeilDiv(11, 4) is 3.
func CeilDiv(dividend, divisor *big.Float) (*big.Float, error) {
	q, err := floorDiv(new(big.Float).Neg(dividend), divisor)
	if err != nil {
		return nil, err
	}
	return q.Neg(q), nil
}

func floorDiv(a, b *big.Float) (*big.Float, error) {
	if b.Sign() == 0 {
		return nil, errDivisionByZero
	}
	if a.IsInf() || b.IsInf() {
		return nil, errMathDomain
	}
	if a.IsInt() && b.IsInt() {
		ai, _ := a.Int(nil)
		bi, _ := b.Int(nil)
		q, m := new(big.Int).QuoRem(ai, bi, new(big.Int))
		if m.Sign() != 0 && (m.Sign() < 0) != (bi.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		}
		return new(big.Float).SetInt(q), nil
	}

	q := new(big.Float).Quo(a, b)
	qi, acc := q.Int(nil)
	if acc == big.Above {
		qi.Sub(qi, big.NewInt(1))
	}
	return new(big.Float).SetInt(qi), nil
}

// finite rejects NaN, and infinities produced from finite inputs.
func finite(v float64, finiteInputs bool) (*big.Float, error) {
	f, err := finiteFloat(v, finiteInputs)
	if err != nil {
		return nil, err
	}
	return big.NewFloat(f), nil
}

func finiteFloat(v float64, finiteInputs bool) (float64, error) {
	if math.IsNaN(v) {
		return 0, errMathDomain
	}
	if math.IsInf(v, 0) && finiteInputs {
		return 0, errMathRange
	}
	return v, nil
}
