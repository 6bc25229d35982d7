// Package collections provides resolvers working on lists, tuples, sets and
// strings.
package collections

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vk/hyago/internal/registry"
	"github.com/vk/hyago/internal/resolver"
	"github.com/zclconf/go-cty/cty"
)

// DefaultNamespace is used when Module.Namespace is empty.
const DefaultNamespace = "hya"

// Module implements the registry.Module interface for this package.
type Module struct {
	Namespace string
}

// Register registers len, iter_join, mergelist, repeatlist and to_list.
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	for name, fn := range map[string]any{
		"len":        Len,
		"iter_join":  IterJoin,
		"mergelist":  MergeList,
		"repeatlist": RepeatList,
		"to_list":    ToList,
	} {
		if err := r.Register(ns+"."+name, fn); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of code points in a string or elements in a
// collection.
func Len(v cty.Value) (int, error) {
	ty := v.Type()
	switch {
	case ty == cty.String:
		if v.IsNull() {
			return 0, fmt.Errorf("string must not be null")
		}
		return utf8.RuneCountInString(v.AsString()), nil
	case ty.IsCollectionType() || ty.IsTupleType() || ty.IsObjectType():
		return v.LengthInt(), nil
	default:
		return 0, fmt.Errorf("%s has no length", ty.FriendlyName())
	}
}

// IterJoin joins the string forms of the elements of values with sep.
func IterJoin(values cty.Value, sep string) (string, error) {
	elems, err := resolver.Elements(values)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(elems))
	for i, elem := range elems {
		s, err := resolver.Stringify(elem)
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// MergeList concatenates its sequence arguments into one list.
func MergeList(lists ...cty.Value) (cty.Value, error) {
	var out []cty.Value
	for i, l := range lists {
		elems, err := resolver.Elements(l)
		if err != nil {
			return cty.NilVal, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, elems...)
	}
	return tuple(out), nil
}

// RepeatList returns values repeated n times. A non-sequence value is
// repeated as a single element; a negative n yields an empty list.
func RepeatList(values cty.Value, n int) (cty.Value, error) {
	elems := []cty.Value{values}
	if resolver.IsSequence(values) {
		var err error
		if elems, err = resolver.Elements(values); err != nil {
			return cty.NilVal, err
		}
	}
	if n <= 0 {
		return cty.EmptyTupleVal, nil
	}
	size, err := resolver.RepeatLen(len(elems), n)
	if err != nil {
		return cty.NilVal, err
	}
	out := make([]cty.Value, 0, size)
	for i := 0; i < n; i++ {
		out = append(out, elems...)
	}
	return tuple(out), nil
}

// ToList converts v into a list: sequences keep their elements, maps and
// objects yield their keys in order and any other value becomes a
// one-element list.
func ToList(v cty.Value) (cty.Value, error) {
	ty := v.Type()
	switch {
	case resolver.IsSequence(v):
		elems, err := resolver.Elements(v)
		if err != nil {
			return cty.NilVal, err
		}
		return tuple(elems), nil
	case ty.IsMapType() || ty.IsObjectType():
		var keys []cty.Value
		for it := v.ElementIterator(); it.Next(); {
			k, _ := it.Element()
			keys = append(keys, k)
		}
		return tuple(keys), nil
	default:
		return cty.TupleVal([]cty.Value{v}), nil
	}
}

func tuple(elems []cty.Value) cty.Value {
	if len(elems) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(elems)
}
