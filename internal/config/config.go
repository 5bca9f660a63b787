// Package config defines the benchmark parameters and their validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-membench/internal/align"
)

// Defaults.
const (
	DefaultNumElements   = 16 * 1024
	DefaultTotalElements = 65636 * DefaultNumElements
	DefaultCheckValue    = 1.0
	DefaultMinOffset     = 4
	DefaultMaxOffset     = 64
)

// ErrInvalid is matched by every *ConfigError.
var ErrInvalid = errors.New("config: invalid configuration")

// ConfigError reports a malformed or inconsistent parameter. It is detected
// before any timing begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalid) match.
func (e *ConfigError) Unwrap() error {
	return ErrInvalid
}

// Config holds the process-wide benchmark parameters. It is passed by value
// to every component that needs it.
type Config struct {
	// NumElements is the working-set size of one kernel call.
	NumElements int `yaml:"num_floats"`

	// TotalElements is the volume processed per run; TotalElements/NumElements
	// complete passes are executed and any remainder is dropped.
	TotalElements int `yaml:"total_floats"`

	// CheckValue seeds the source buffers.
	CheckValue float32 `yaml:"check_value"`

	// EnableWideVector enables the 256-bit strategies.
	EnableWideVector bool `yaml:"enable_avx"`

	// EmitChartMarkup wraps the table in an HTML chart page.
	EmitChartMarkup bool `yaml:"report_html"`

	// MinOffset and MaxOffset bound the alignment sweep (inclusive, bytes).
	MinOffset int `yaml:"min_offset"`
	MaxOffset int `yaml:"max_offset"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		NumElements:      DefaultNumElements,
		TotalElements:    DefaultTotalElements,
		CheckValue:       DefaultCheckValue,
		EnableWideVector: true,
		EmitChartMarkup:  true,
		MinOffset:        DefaultMinOffset,
		MaxOffset:        DefaultMaxOffset,
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Field: "file", Reason: err.Error()}
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default. An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &ConfigError{Field: "file", Reason: err.Error()}
	}
	return cfg, nil
}

// Validate checks the parameters for consistency.
func (c Config) Validate() error {
	if c.NumElements <= 0 {
		return &ConfigError{Field: "num-floats", Reason: fmt.Sprintf("must be positive: %d", c.NumElements)}
	}
	if c.TotalElements <= 0 {
		return &ConfigError{Field: "total-floats", Reason: fmt.Sprintf("must be positive: %d", c.TotalElements)}
	}
	if c.TotalElements < c.NumElements {
		return &ConfigError{
			Field:  "total-floats",
			Reason: fmt.Sprintf("must be greater than num-floats: %d < %d", c.TotalElements, c.NumElements),
		}
	}
	if v := float64(c.CheckValue); math.IsNaN(v) || math.IsInf(v, 0) {
		return &ConfigError{Field: "check-value", Reason: fmt.Sprintf("must be finite: %v", c.CheckValue)}
	}
	if c.MinOffset < 0 || c.MaxOffset >= align.Boundary {
		return &ConfigError{
			Field:  "offset",
			Reason: fmt.Sprintf("range [%d, %d] must lie in [0, %d]", c.MinOffset, c.MaxOffset, align.Boundary-1),
		}
	}
	if c.MinOffset > c.MaxOffset {
		return &ConfigError{
			Field:  "offset",
			Reason: fmt.Sprintf("min-offset %d exceeds max-offset %d", c.MinOffset, c.MaxOffset),
		}
	}
	return nil
}

// Repetitions returns the number of complete kernel passes per run.
func (c Config) Repetitions() int {
	return c.TotalElements / c.NumElements
}

// Offsets returns the sweep offsets in ascending order.
func (c Config) Offsets() []int {
	offsets := make([]int, 0, c.MaxOffset-c.MinOffset+1)
	for o := c.MinOffset; o <= c.MaxOffset; o++ {
		offsets = append(offsets, o)
	}
	return offsets
}
