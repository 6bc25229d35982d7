// Package env_vars exposes the process environment to configuration through
// the env and env_vars resolvers.
package env_vars

import (
	"fmt"
	"os"
	"strings"

	"github.com/vk/hyago/internal/registry"
)

// DefaultNamespace is used when Module.Namespace is empty.
const DefaultNamespace = "hya"

// Module implements the registry.Module interface for this package.
type Module struct {
	Namespace string
}

// Register registers env and env_vars under the module namespace.
func (m *Module) Register(r *registry.Registry) error {
	ns := m.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	if err := r.Register(ns+".env", Env); err != nil {
		return err
	}
	return r.Register(ns+".env_vars", EnvVars)
}

// Env returns the value of the environment variable name. When the variable
// is unset the first fallback is returned, and with no fallback it is an
// error. A variable set to the empty string counts as set.
func Env(name string, fallback ...string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("environment variable name must not be empty")
	}
	if len(fallback) > 1 {
		return "", fmt.Errorf("env accepts at most one default, got %d", len(fallback))
	}
	if v, ok := os.LookupEnv(name); ok {
		return v, nil
	}
	if len(fallback) == 1 {
		return fallback[0], nil
	}
	return "", fmt.Errorf("environment variable %q is not set", name)
}

// EnvVars returns every environment variable, optionally restricted to
// names starting with prefix.
func EnvVars(prefix ...string) (map[string]string, error) {
	if len(prefix) > 1 {
		return nil, fmt.Errorf("env_vars accepts at most one prefix, got %d", len(prefix))
	}
	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 {
			continue
		}
		if len(prefix) == 1 && !strings.HasPrefix(pair[0], prefix[0]) {
			continue
		}
		envMap[pair[0]] = pair[1]
	}
	return envMap, nil
}
