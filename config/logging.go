package config

import "fmt"

// LoggingConfig selects the minimum log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

// SetDefaults applies the info level.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level is one zerolog understands.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return nil
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
}
