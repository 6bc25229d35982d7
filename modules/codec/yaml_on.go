//go:build !hya_noyaml

package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeYAML(src string) (any, error) {
	var data any
	if err := yaml.Unmarshal([]byte(src), &data); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return data, nil
}
