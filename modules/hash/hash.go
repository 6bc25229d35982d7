// Package hash provides resolvers that digest a value's string form.
package hash

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"

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

// Register registers sha1 and sha256 under "<namespace>.<name>".
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	if err := r.Register(ns+".sha1", SHA1); err != nil {
		return err
	}
	return r.Register(ns+".sha256", SHA256)
}

// SHA1 returns the lowercase hex SHA-1 digest of v's string form.
func SHA1(v cty.Value) (string, error) {
	return digest(sha1.New(), v)
}

// SHA256 returns the lowercase hex SHA-256 digest of v's string form.
func SHA256(v cty.Value) (string, error) {
	return digest(sha256.New(), v)
}

func digest(h hash.Hash, v cty.Value) (string, error) {
	s, err := resolver.Stringify(v)
	if err != nil {
		return "", err
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil)), nil
}
