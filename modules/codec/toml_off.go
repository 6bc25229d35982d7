//go:build hya_notoml

package codec

import "github.com/vk/hyago/internal/capability"

func decodeTOML(string) (any, error) {
	return nil, capability.Require(capability.TOML)
}
