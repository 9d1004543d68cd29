package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteSample writes the default configuration as YAML.
func WriteSample(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return nil
}
