//go:build hya_noyaml

package codec

import "github.com/vk/hyago/internal/capability"

func decodeYAML(string) (any, error) {
	return nil, capability.Require(capability.YAML)
}
