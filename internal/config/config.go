package config

import "fmt"

// Config represents the complete configuration for tabdrag.
type Config struct {
	Drag    DragConfig    `mapstructure:"drag" json:"drag" toml:"drag"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging" toml:"logging"`
	History HistoryConfig `mapstructure:"history" json:"history" toml:"history"`
}

// DragConfig holds the drag engine tunables.
type DragConfig struct {
	// Threshold is the pointer displacement (points) the gesture path
	// requires before a press becomes a drag.
	Threshold float64 `mapstructure:"threshold" json:"threshold" toml:"threshold"`
	// HysteresisMargin is how far the cursor must clear a window edge
	// before the outside-all-windows flag flips.
	HysteresisMargin float64 `mapstructure:"hysteresis_margin" json:"hysteresis_margin" toml:"hysteresis_margin"`
	// FeedbackEnabled toggles haptic/visual feedback events.
	FeedbackEnabled bool `mapstructure:"feedback_enabled" json:"feedback_enabled" toml:"feedback_enabled"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" toml:"level"`   // trace, debug, info, warn, error
	Format string `mapstructure:"format" json:"format" toml:"format"` // json or console
}

// HistoryConfig controls the committed-operation diagnostics store.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled" toml:"enabled"`
	Path    string `mapstructure:"path" json:"path" toml:"path"` // Empty means the XDG default
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Drag: DragConfig{
			Threshold:        4.0,
			HysteresisMargin: 2.0,
			FeedbackEnabled:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Drag.Threshold <= 0 {
		return fmt.Errorf("drag.threshold must be positive, got %v", c.Drag.Threshold)
	}
	if c.Drag.HysteresisMargin < 0 {
		return fmt.Errorf("drag.hysteresis_margin must not be negative, got %v", c.Drag.HysteresisMargin)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
