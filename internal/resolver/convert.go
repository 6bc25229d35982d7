package resolver

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// IsSequence reports whether v is a list, tuple or set.
func IsSequence(v cty.Value) bool {
	ty := v.Type()
	return ty.IsListType() || ty.IsTupleType() || ty.IsSetType()
}

// Elements returns the elements of a known list, tuple or set.
func Elements(v cty.Value) ([]cty.Value, error) {
	if !IsSequence(v) {
		return nil, fmt.Errorf("%s is not a list, tuple or set", v.Type().FriendlyName())
	}
	if v.IsNull() {
		return nil, fmt.Errorf("sequence must not be null")
	}
	return v.AsValueSlice(), nil
}

// Stringify renders v the way a configuration author would write it: strings
// are used verbatim, numbers in their shortest exact decimal form, and
// everything else as compact JSON.
func Stringify(v cty.Value) (string, error) {
	if !v.IsWhollyKnown() {
		return "", fmt.Errorf("value is not yet known")
	}
	if v.IsNull() {
		return "null", nil
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Number:
		return v.AsBigFloat().Text('f', -1), nil
	case cty.Bool:
		if v.True() {
			return "true", nil
		}
		return "false", nil
	}
	raw, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
