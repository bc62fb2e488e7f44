// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// LoadInputs reads year values from a YAML file holding either a sequence
// or a single scalar. Values keep their decoded types (int, float64, string,
// bool, nil) so diagnostics can name them.
func LoadInputs(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", path, err)
	}
	return ParseInputs(data)
}

// ParseInputs decodes YAML year values. See LoadInputs.
func ParseInputs(data []byte) ([]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing input YAML: %w", err)
	}

	switch v := doc.(type) {
	case nil:
		return nil, fmt.Errorf("input contains no year values")
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("input contains no year values")
		}
		return v, nil
	case map[string]any, map[any]any:
		return nil, fmt.Errorf("input must be a list of year values, got a mapping")
	default:
		return []any{v}, nil
	}
}
