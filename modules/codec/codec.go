// Package codec provides resolvers that decode YAML and TOML documents
// embedded in configuration strings.
//
// Both decoders depend on optional libraries. When a library is compiled out
// (see package capability) the resolver is still registered and fails with
// a *capability.DependencyUnavailableError when called.
package codec

import (
	"fmt"

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

// Register registers yaml_decode and toml_decode.
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	if err := r.Register(ns+".yaml_decode", YAMLDecode); err != nil {
		return err
	}
	return r.Register(ns+".toml_decode", TOMLDecode)
}

// YAMLDecode parses a YAML document into the equivalent cty value.
func YAMLDecode(src string) (cty.Value, error) {
	data, err := decodeYAML(src)
	if err != nil {
		return cty.NilVal, err
	}
	return convert("YAML", data)
}

// TOMLDecode parses a TOML document into an object.
func TOMLDecode(src string) (cty.Value, error) {
	data, err := decodeTOML(src)
	if err != nil {
		return cty.NilVal, err
	}
	return convert("TOML", data)
}

func convert(format string, data any) (cty.Value, error) {
	v, err := resolver.ToValue(data)
	if err != nil {
		return cty.NilVal, fmt.Errorf("decoded %s has no configuration equivalent: %w", format, err)
	}
	return v, nil
}
