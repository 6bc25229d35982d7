// Package ident provides the uuid5 resolver, which derives a stable UUID
// from a namespace and a name so that the same configuration always yields
// the same identifier.
package ident

import (
	"github.com/vk/hyago/internal/registry"
)

// DefaultNamespace is used when Module.Namespace is empty.
const DefaultNamespace = "hya"

// Module implements the registry.Module interface for this package.
type Module struct {
	Namespace string
}

// Register registers uuid5 under "<namespace>.uuid5".
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return r.Register(ns+".uuid5", UUID5)
}

// UUID5 returns the RFC 4122 version 5 UUID of name within namespace.
// namespace is one of "dns", "url", "oid", "x500" or a UUID string.
func UUID5(namespace, name string) (string, error) {
	return uuid5(namespace, name)
}
