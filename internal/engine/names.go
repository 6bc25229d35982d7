package engine

import (
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
)

const (
	keySeparator       = "."
	namespaceSeparator = "::"
)

// FunctionName translates a registry key into the HCL function name it is
// installed under: "hya.add" becomes "hya::add".
func FunctionName(key string) (string, error) {
	segments := strings.Split(key, keySeparator)
	for _, seg := range segments {
		if seg == "" {
			return "", &InvalidKeyError{Key: key}
		}
		if !hclsyntax.ValidIdentifier(seg) {
			return "", &InvalidKeyError{Key: key, Segment: seg}
		}
	}
	return strings.Join(segments, namespaceSeparator), nil
}

// KeyName is the inverse of FunctionName.
func KeyName(name string) string {
	return strings.ReplaceAll(name, namespaceSeparator, keySeparator)
}
