// Package paths provides resolvers that turn configuration strings into
// absolute filesystem paths.
package paths

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/hyago/internal/registry"
)

// DefaultNamespace is used when Module.Namespace is empty.
const DefaultNamespace = "hya"

// Module implements the registry.Module interface for this package.
type Module struct {
	Namespace string
}

// Register registers to_path and its alias path.
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	if err := r.Register(ns+".to_path", ToPath); err != nil {
		return err
	}
	return r.Register(ns+".path", ToPath)
}

// ToPath converts p into an absolute, cleaned path. p may be a file:// URL
// or percent-encoded, and a leading "~" expands to the home directory.
// Symlinks are resolved when the path exists.
func ToPath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("path must not be empty")
	}
	p = urlPath(p)

	expanded, err := expandHome(p)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to make %q absolute: %w", p, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// urlPath extracts the unescaped path of a file URL or plain path. Anything
// that does not parse as a URL is returned unchanged.
func urlPath(p string) string {
	u, err := url.Parse(p)
	if err != nil {
		return p
	}
	switch u.Scheme {
	case "", "file":
		if u.Path == "" {
			return p
		}
		return u.Path
	default:
		return p
	}
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", p, err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
