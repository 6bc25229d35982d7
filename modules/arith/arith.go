package arith

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vk/hyago/internal/resolver"
	"github.com/zclconf/go-cty/cty"
)

var (
	errDivisionByZero = errors.New("division by zero")
	errMathDomain     = errors.New("math domain error")
	errMathRange      = errors.New("math range error")
)

func unsupported(op string, a, b cty.Value) error {
	return fmt.Errorf("unsupported operand types for %s: %s and %s",
		op, a.Type().FriendlyName(), b.Type().FriendlyName())
}

// Add sums numbers, concatenates strings or concatenates sequences. All
// operands must be of the same kind.
func Add(first cty.Value, rest ...cty.Value) (cty.Value, error) {
	out := first
	for _, v := range rest {
		next, err := add(out, v)
		if err != nil {
			return cty.NilVal, err
		}
		out = next
	}
	return out, nil
}

func add(a, b cty.Value) (cty.Value, error) {
	switch {
	case a.Type() == cty.Number && b.Type() == cty.Number:
		return a.Add(b), nil
	case a.Type() == cty.String && b.Type() == cty.String:
		return cty.StringVal(a.AsString() + b.AsString()), nil
	case resolver.IsSequence(a) && resolver.IsSequence(b):
		ae, err := resolver.Elements(a)
		if err != nil {
			return cty.NilVal, err
		}
		be, err := resolver.Elements(b)
		if err != nil {
			return cty.NilVal, err
		}
		return tuple(append(ae, be...)), nil
	default:
		return cty.NilVal, unsupported("add", a, b)
	}
}

// Sub returns a - b.
func Sub(a, b *big.Float) *big.Float {
	return new(big.Float).Sub(a, b)
}

// Mul multiplies numbers. A string or sequence multiplied by a non-negative
// integer is repeated that many times.
func Mul(first cty.Value, rest ...cty.Value) (cty.Value, error) {
	out := first
	for _, v := range rest {
		next, err := mul(out, v)
		if err != nil {
			return cty.NilVal, err
		}
		out = next
	}
	return out, nil
}

func mul(a, b cty.Value) (cty.Value, error) {
	if a.Type() == cty.Number && b.Type() == cty.Number {
		return a.Multiply(b), nil
	}
	seq, count := a, b
	if a.Type() == cty.Number {
		seq, count = b, a
	}
	if count.Type() != cty.Number {
		return cty.NilVal, unsupported("mul", a, b)
	}
	n, err := repeatCount(count)
	if err != nil {
		return cty.NilVal, err
	}
	switch {
	case seq.Type() == cty.String:
		s := seq.AsString()
		size, err := resolver.RepeatLen(len(s), n)
		if err != nil {
			return cty.NilVal, err
		}
		out := make([]byte, 0, size)
		for i := 0; i < n; i++ {
			out = append(out, s...)
		}
		return cty.StringVal(string(out)), nil
	case resolver.IsSequence(seq):
		elems, err := resolver.Elements(seq)
		if err != nil {
			return cty.NilVal, err
		}
		out, err := Repeat(elems, n)
		if err != nil {
			return cty.NilVal, err
		}
		return tuple(out), nil
	default:
		return cty.NilVal, unsupported("mul", a, b)
	}
}

func repeatCount(v cty.Value) (int, error) {
	bf := v.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("can't repeat a sequence a non-integer number of times (%s)", bf.Text('g', -1))
	}
	n, acc := bf.Int64()
	if acc != big.Exact || n > resolver.MaxRepeatLen {
		return 0, fmt.Errorf("repeat count %s is too large", bf.Text('g', -1))
	}
	if n < 0 {
		n = 0
	}
	return int(n), nil
}

// Repeat returns elems concatenated n times. The result may hold at most
// resolver.MaxRepeatLen elements.
func Repeat(elems []cty.Value, n int) ([]cty.Value, error) {
	size, err := resolver.RepeatLen(len(elems), n)
	if err != nil {
		return nil, err
	}
	out := make([]cty.Value, 0, size)
	for i := 0; i < n; i++ {
		out = append(out, elems...)
	}
	return out, nil
}

func tuple(elems []cty.Value) cty.Value {
	if len(elems) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(elems)
}

// Neg returns -x.
func Neg(x *big.Float) *big.Float {
	return new(big.Float).Neg(x)
}

// Max returns the largest argument. Given a single sequence it returns the
// largest element.
func Max(first cty.Value, rest ...cty.Value) (cty.Value, error) {
	return extreme("max", 1, first, rest)
}

// Min returns the smallest argument. Given a single sequence it returns the
// smallest element.
func Min(first cty.Value, rest ...cty.Value) (cty.Value, error) {
	return extreme("min", -1, first, rest)
}

func extreme(op string, want int, first cty.Value, rest []cty.Value) (cty.Value, error) {
	values := append([]cty.Value{first}, rest...)
	if len(rest) == 0 && resolver.IsSequence(first) {
		elems, err := resolver.Elements(first)
		if err != nil {
			return cty.NilVal, err
		}
		if len(elems) == 0 {
			return cty.NilVal, fmt.Errorf("%s of an empty sequence", op)
		}
		values = elems
	}

	best := values[0]
	for _, v := range values[1:] {
		c, err := compare(op, v, best)
		if err != nil {
			return cty.NilVal, err
		}
		if c == want {
			best = v
		}
	}
	return best, nil
}

func compare(op string, a, b cty.Value) (int, error) {
	if a.IsNull() || b.IsNull() || !a.IsKnown() || !b.IsKnown() {
		return 0, fmt.Errorf("%s needs known, non-null values", op)
	}
	switch {
	case a.Type() == cty.Number && b.Type() == cty.Number:
		return a.AsBigFloat().Cmp(b.AsBigFloat()), nil
	case a.Type() == cty.String && b.Type() == cty.String:
		as, bs := a.AsString(), b.AsString()
		switch {
		case as < bs:
			return -1, nil
		case as > bs:
			return 1, nil
		}
		return 0, nil
	default:
		return 0, unsupported(op, a, b)
	}
}
