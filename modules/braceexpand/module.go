// Package braceexpand provides the braceexpand resolver, which performs
// bash-style brace expansion:
//
//	file{1..3}.txt   -> file1.txt file2.txt file3.txt
//	{a,b}{01..02}    -> a01 a02 b01 b02
//	{z..x}           -> z y x
//
// A backslash escapes the following character. Braces that do not enclose a
// comma list or a range are kept literally.
package braceexpand

import (
	"github.com/vk/hyago/internal/registry"
)

// DefaultNamespace is used when Module.Namespace is empty.
const DefaultNamespace = "hya"

// Module implements the registry.Module interface for this package.
type Module struct {
	Namespace string
}

// Register registers braceexpand under "<namespace>.braceexpand".
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return r.Register(ns+".braceexpand", Expand)
}
