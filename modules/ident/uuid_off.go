//go:build hya_nouuid

package ident

import "github.com/vk/hyago/internal/capability"

func uuid5(string, string) (string, error) {
	return "", capability.Require(capability.UUID)
}
