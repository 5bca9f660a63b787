package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 16*1024, cfg.NumElements)
	assert.Equal(t, 65636, cfg.Repetitions())
	assert.Len(t, cfg.Offsets(), 61)
	assert.Equal(t, 4, cfg.Offsets()[0])
	assert.Equal(t, 64, cfg.Offsets()[60])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Config)
		field string
	}{
		{"zero num", func(c *Config) { c.NumElements = 0 }, "num-floats"},
		{"negative total", func(c *Config) { c.TotalElements = -1 }, "total-floats"},
		{"total below num", func(c *Config) { c.NumElements = 1024; c.TotalElements = 1000 }, "total-floats"},
		{"nan check value", func(c *Config) { c.CheckValue = float32(math.NaN()) }, "check-value"},
		{"inf check value", func(c *Config) { c.CheckValue = float32(math.Inf(1)) }, "check-value"},
		{"negative min offset", func(c *Config) { c.MinOffset = -1 }, "offset"},
		{"max offset past boundary", func(c *Config) { c.MaxOffset = 256 }, "offset"},
		{"inverted range", func(c *Config) { c.MinOffset = 32; c.MaxOffset = 16 }, "offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestValidateAcceptsEqualTotal(t *testing.T) {
	cfg := Default()
	cfg.NumElements = 1024
	cfg.TotalElements = 1024
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Repetitions())
}

func TestRepetitionsDropsRemainder(t *testing.T) {
	cfg := Default()
	cfg.NumElements = 1000
	cfg.TotalElements = 2999
	assert.Equal(t, 2, cfg.Repetitions())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
num_floats: 1024
total_floats: 102400
check_value: 2.0
enable_avx: false
report_html: false
min_offset: 16
max_offset: 32
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		NumElements:      1024,
		TotalElements:    102400,
		CheckValue:       2,
		EnableWideVector: false,
		EmitChartMarkup:  false,
		MinOffset:        16,
		MaxOffset:        32,
	}, cfg)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("check_value: 3\n"))
	require.NoError(t, err)

	want := Default()
	want.CheckValue = 3
	assert.Equal(t, want, cfg)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("num_elements: 10\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_floats: 2048\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.NumElements)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "file", ce.Field)
}
