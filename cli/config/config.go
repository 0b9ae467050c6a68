// Package config handles YAML config file loading for the sluice tool.
package config

import (
	"fmt"

	"github.com/justapithecus/sluice/log"
)

// Defaults applied by Normalize when the config file leaves a value
// unset. The string cap matches the frame limit the surrounding build
// protocol enforces on untrusted peers.
const (
	DefaultBufferSize   = 32 * 1024
	DefaultMaxStringLen = 16 * 1024 * 1024
	DefaultWarnBytes    = 256 * 1024 * 1024
	DefaultLogLevel     = "info"
)

// Config represents a sluice.yaml configuration file. All values are
// optional and act as defaults for sluice flags. CLI flags always
// override config values.
type Config struct {
	// BufferSize is the internal buffer capacity for descriptor streams.
	BufferSize int `yaml:"buffer_size"`
	// MaxStringLen bounds decoded string lengths; longer fields fail
	// with a capacity error before allocation.
	MaxStringLen int `yaml:"max_string_len"`
	// WarnThresholdBytes is the cumulative transfer size that triggers
	// the one-shot large-transfer warning.
	WarnThresholdBytes int64 `yaml:"warn_threshold_bytes"`
	// Stats enables the metrics snapshot dump on stderr after each
	// command.
	Stats bool `yaml:"stats"`
	// LogLevel is the stderr diagnostics floor: debug, info, warn or
	// error.
	LogLevel string `yaml:"log_level"`
}

// Normalize fills unset values with defaults.
func (c *Config) Normalize() {
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.MaxStringLen == 0 {
		c.MaxStringLen = DefaultMaxStringLen
	}
	if c.WarnThresholdBytes == 0 {
		c.WarnThresholdBytes = DefaultWarnBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate rejects values that would misconfigure the stream layer.
func (c *Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.MaxStringLen < 0 {
		return fmt.Errorf("max_string_len must be positive, got %d", c.MaxStringLen)
	}
	if c.WarnThresholdBytes < 0 {
		return fmt.Errorf("warn_threshold_bytes must be positive, got %d", c.WarnThresholdBytes)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level %q is not a known level: %w", c.LogLevel, err)
		}
	}
	return nil
}
