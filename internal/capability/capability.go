// Package capability records which optional third-party libraries were
// compiled into the binary.
//
// Each optional library can be left out with a build tag (hya_noyaml,
// hya_notoml, hya_nouuid). Resolvers that depend on a library are registered
// regardless and fail at call time with a *DependencyUnavailableError when
// the library is missing.
package capability

import "fmt"

// Capability names an optional library.
type Capability string

const (
	YAML Capability = "yaml"
	TOML Capability = "toml"
	UUID Capability = "uuid"
)

// Package returns the import path of the library behind c.
func (c Capability) Package() string {
	switch c {
	case YAML:
		return "gopkg.in/yaml.v3"
	case TOML:
		return "github.com/BurntSushi/toml"
	case UUID:
		return "github.com/google/uuid"
	default:
		return string(c)
	}
}

// BuildTag returns the build tag that compiles c out.
func (c Capability) BuildTag() string {
	return "hya_no" + string(c)
}

// All returns every known capability.
func All() []Capability {
	return []Capability{YAML, TOML, UUID}
}

// Available reports whether the library behind c is compiled in.
func Available(c Capability) bool {
	switch c {
	case YAML:
		return yamlEnabled
	case TOML:
		return tomlEnabled
	case UUID:
		return uuidEnabled
	default:
		return false
	}
}

// Require returns a *DependencyUnavailableError if c is not available.
func Require(c Capability) error {
	if Available(c) {
		return nil
	}
	return &DependencyUnavailableError{Capability: c, Package: c.Package()}
}

// DependencyUnavailableError is returned when a resolver needs a library that
// was compiled out.
type DependencyUnavailableError struct {
	Capability Capability
	Package    string
}

func (e *DependencyUnavailableError) Error() string {
	return fmt.Sprintf("%s support is unavailable: %s was compiled out (built with -tags %s)",
		e.Capability, e.Package, e.Capability.BuildTag())
}
