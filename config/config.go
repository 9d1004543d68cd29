// Package config loads the YAML settings of the lll command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lattice/lll"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Delta         float64 `yaml:"delta" json:"delta"`
	Epsilon       float64 `yaml:"epsilon" json:"epsilon"`
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
	Log           Log     `yaml:"log" json:"log"`
	Output        Output  `yaml:"output" json:"output"`
}

type Output struct {
	Format string `yaml:"format" json:"format"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Delta:         lll.DefaultDelta,
		Epsilon:       lll.DefaultEpsilon,
		MaxIterations: lll.DefaultMaxIterations,
		Log:           Log{Level: LogLevelWarn},
		Output:        Output{Format: FormatText},
	}
}

// Parse decodes raw YAML over Default(). Unknown keys are rejected.
// An empty document yields the defaults.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges; the first problem found is returned.
func (c Config) Validate() error {
	if err := lll.ValidateDelta(c.Delta); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon=%g must be finite and non-negative", ErrInvalidConfig, c.Epsilon)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations=%d must be non-negative", ErrInvalidConfig, c.MaxIterations)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q (want %s or %s)", ErrInvalidConfig, c.Output.Format, FormatText, FormatJSON)
	}

	return nil
}

// ReducerOptions translates the numeric settings into lll options.
func (c Config) ReducerOptions() []lll.Option {
	return []lll.Option{
		lll.WithEpsilon(c.Epsilon),
		lll.WithMaxIterations(c.MaxIterations),
	}
}
