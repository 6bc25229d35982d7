package resolver

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	// ErrNotCallable is wrapped by Compile errors for values that cannot be called.
	ErrNotCallable = errors.New("resolver must be callable")
	// ErrUnsupportedSignature is wrapped by Compile errors for funcs whose
	// parameters or results have no cty equivalent.
	ErrUnsupportedSignature = errors.New("unsupported resolver signature")
)

var (
	valueType    = reflect.TypeOf(cty.Value{})
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	bigFloatType = reflect.TypeOf(big.Float{})
	bigIntType   = reflect.TypeOf(big.Int{})
)

// Compile turns v into a function.Function.
//
// For plain Go funcs, each parameter must be a cty.Value (accepting any
// type), a *big.Float or *big.Int, or a Go type gocty.ImpliedType understands.
// A variadic final parameter becomes the function's VarParam. The func must
// return (T) or (T, error), where T is a cty.Value, an interface type (the
// concrete result is converted at call time with ToValue) or a type with an
// implied cty type.
func Compile(v any) (function.Function, error) {
	switch fn := v.(type) {
	case nil:
		return function.Function{}, fmt.Errorf("%w, but received nil", ErrNotCallable)
	case function.Function:
		if fn == (function.Function{}) {
			return function.Function{}, fmt.Errorf("%w, but received a zero function.Function", ErrNotCallable)
		}
		return fn, nil
	case *function.Spec:
		if fn == nil || fn.Impl == nil || fn.Type == nil {
			return function.Function{}, fmt.Errorf("%w, but received an incomplete *function.Spec", ErrNotCallable)
		}
		return function.New(fn), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return function.Function{}, fmt.Errorf("%w, but received %T", ErrNotCallable, v)
	}
	if rv.IsNil() {
		return function.Function{}, fmt.Errorf("%w, but received a nil %T", ErrNotCallable, v)
	}
	return compileFunc(rv)
}

// compileFunc builds a function.Spec around a reflected Go func.
func compileFunc(rv reflect.Value) (function.Function, error) {
	rt := rv.Type()

	spec := &function.Spec{}
	goParams := make([]reflect.Type, rt.NumIn())
	for i := 0; i < rt.NumIn(); i++ {
		pt := rt.In(i)
		variadic := rt.IsVariadic() && i == rt.NumIn()-1
		if variadic {
			pt = pt.Elem()
		}
		goParams[i] = pt

		ty, err := ImpliedType(pt)
		if err != nil {
			return function.Function{}, fmt.Errorf("%w: parameter %d of %s: %v", ErrUnsupportedSignature, i, rt, err)
		}

		param := function.Parameter{
			Name: fmt.Sprintf("arg%d", i),
			Type: ty,
		}
		if variadic {
			spec.VarParam = &param
		} else {
			spec.Params = append(spec.Params, param)
		}
	}

	switch {
	case rt.NumOut() == 1:
	case rt.NumOut() == 2 && rt.Out(1) == errorType:
	default:
		return function.Function{}, fmt.Errorf("%w: %s must return (T) or (T, error)", ErrUnsupportedSignature, rt)
	}

	out := rt.Out(0)
	retType := cty.DynamicPseudoType
	if out.Kind() != reflect.Interface {
		ty, err := ImpliedType(out)
		if err != nil {
			return function.Function{}, fmt.Errorf("%w: result of %s: %v", ErrUnsupportedSignature, rt, err)
		}
		retType = ty
	}
	spec.Type = function.StaticReturnType(retType)

	paramType := func(i int) reflect.Type {
		if i >= len(goParams) {
			return goParams[len(goParams)-1]
		}
		return goParams[i]
	}

	spec.Impl = func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			target := reflect.New(paramType(i))
			if err := gocty.FromCtyValue(arg, target.Interface()); err != nil {
				return cty.NilVal, function.NewArgError(i, err)
			}
			in[i] = target.Elem()
		}

		results := rv.Call(in)
		if len(results) == 2 && !results[1].IsNil() {
			return cty.NilVal, results[1].Interface().(error)
		}
		return resultValue(results[0], retType)
	}

	return function.New(spec), nil
}

// resultValue converts a Go result into a cty.Value conforming to retType.
func resultValue(out reflect.Value, retType cty.Type) (cty.Value, error) {
	if out.Type() == valueType {
		return out.Interface().(cty.Value), nil
	}
	if out.Kind() == reflect.Interface {
		if out.IsNil() {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		return ToValue(out.Interface())
	}
	return gocty.ToCtyValue(out.Interface(), retType)
}

// ImpliedType returns the cty type a Go type is exchanged as. It extends
// gocty.ImpliedType with cty.Value (any type) and math/big numbers.
func ImpliedType(rt reflect.Type) (cty.Type, error) {
	base := rt
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	switch {
	case base == valueType:
		return cty.DynamicPseudoType, nil
	case base == bigFloatType, base == bigIntType:
		return cty.Number, nil
	case base.Kind() == reflect.Interface:
		return cty.NilType, fmt.Errorf("no cty.Type for interface %s", rt)
	}
	return gocty.ImpliedType(reflect.Zero(rt).Interface())
}
