//go:build !hya_notoml

package codec

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

func decodeTOML(src string) (any, error) {
	data := make(map[string]any)
	if _, err := toml.Decode(src, &data); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	return data, nil
}
