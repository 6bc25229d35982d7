package resolver

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ToValue converts an arbitrary Go value into a cty.Value. Unlike
// gocty.ToCtyValue it does not need a target type up front, which makes it
// suitable for data decoded from YAML, TOML or JSON: maps become objects,
// slices become tuples and scalars map onto their cty primitives.
func ToValue(v any) (cty.Value, error) {
	return toValue(reflect.ValueOf(v), nil)
}

func toValue(rv reflect.Value, path cty.Path) (cty.Value, error) {
	if !rv.IsValid() {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}

	switch val := rv.Interface().(type) {
	case cty.Value:
		return val, nil
	case time.Time:
		return cty.StringVal(val.Format(time.RFC3339Nano)), nil
	case big.Float:
		return cty.NumberVal(&val), nil
	case *big.Float:
		if val == nil {
			return cty.NullVal(cty.Number), nil
		}
		return cty.NumberVal(val), nil
	case big.Int:
		return cty.NumberVal(new(big.Float).SetInt(&val)), nil
	case *big.Int:
		if val == nil {
			return cty.NullVal(cty.Number), nil
		}
		return cty.NumberVal(new(big.Float).SetInt(val)), nil
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Ptr:
		if rv.IsNil() {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		return toValue(rv.Elem(), path)

	case reflect.Bool:
		return cty.BoolVal(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cty.NumberIntVal(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cty.NumberUIntVal(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return cty.NilVal, path.NewErrorf("NaN has no cty representation")
		}
		return cty.NumberFloatVal(rv.Float()), nil
	case reflect.String:
		return cty.StringVal(rv.String()), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, rv.Len())
		for i := range elems {
			ev, err := toValue(rv.Index(i), append(path, cty.IndexStep{Key: cty.NumberIntVal(int64(i))}))
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return cty.NilVal, path.NewErrorf("can't convert map with %s keys", rv.Type().Key())
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		attrs := make(map[string]cty.Value, len(keys))
		for _, k := range keys {
			name := k.String()
			av, err := toValue(rv.MapIndex(k), append(path, cty.GetAttrStep{Name: name}))
			if err != nil {
				return cty.NilVal, err
			}
			attrs[name] = av
		}
		return cty.ObjectVal(attrs), nil

	case reflect.Struct:
		ty, err := gocty.ImpliedType(rv.Interface())
		if err != nil {
			return cty.NilVal, fmt.Errorf("can't convert %s: %w", rv.Type(), err)
		}
		return gocty.ToCtyValue(rv.Interface(), ty)
	}

	return cty.NilVal, path.NewErrorf("can't convert Go %s to a cty value", rv.Kind())
}
