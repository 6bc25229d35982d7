// Package arith provides the arithmetic resolvers: add, sub, mul, neg, pow,
// sqrt, exp, log, log10, asinh, sinh, max, min, pi, ceildiv, floordiv and
// truediv.
package arith

import (
	"github.com/vk/hyago/internal/registry"
)

// DefaultNamespace is used when Module.Namespace is empty.
const DefaultNamespace = "hya"

// Module implements the registry.Module interface for this package.
type Module struct {
	Namespace string
}

// Register registers the arithmetic resolvers under "<namespace>.<name>".
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	resolvers := []struct {
		name string
		fn   any
	}{
		{"add", Add},
		{"sub", Sub},
		{"mul", Mul},
		{"neg", Neg},
		{"pow", Pow},
		{"sqrt", Sqrt},
		{"exp", Exp},
		{"log", Log},
		{"log10", Log10},
		{"asinh", Asinh},
		{"sinh", Sinh},
		{"max", Max},
		{"min", Min},
		{"pi", Pi},
		{"ceildiv", CeilDiv},
		{"floordiv", FloorDiv},
		{"truediv", TrueDiv},
	}
	for _, res := range resolvers {
		if err := r.Register(ns+"."+res.name, res.fn); err != nil {
			return err
		}
	}
	return nil
}
