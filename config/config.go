package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kmarens/famsched/core/family"
	"github.com/kmarens/famsched/core/metrics"
	"github.com/kmarens/famsched/core/model"
	"github.com/kmarens/famsched/core/schedule"
)

// Config is the top-level planner configuration.
type Config struct {
	Logging   LoggingConfig          `json:"logging"`
	Scoring   schedule.ScoringConfig `json:"scoring"`
	Family    family.Config          `json:"family"`
	DayWindow DayWindowConfig        `json:"day_window"`
	Metrics   metrics.Config         `json:"metrics"`
}

// Load reads the configuration file, applies FS_ environment overrides
// and validates the result. JSON and YAML files are supported.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fs_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every default applied, for
// callers running without a config file.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults fills unset sections.
func (c *Config) SetDefaults() {
	c.Logging.SetDefaults()
	c.Scoring.SetDefaults()
	c.Family.SetDefaults()
	c.DayWindow.SetDefaults()
	c.Metrics.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if err := c.Family.Validate(); err != nil {
		return err
	}
	if _, err := c.DayWindow.Window(); err != nil {
		return err
	}
	return nil
}

// DayWindowConfig bounds free-time computation, "HH:MM" strings.
type DayWindowConfig struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SetDefaults applies the reference 07:00-20:00 window.
func (c *DayWindowConfig) SetDefaults() {
	if c.Start == "" {
		c.Start = "07:00"
	}
	if c.End == "" {
		c.End = "20:00"
	}
}

// Window parses the configured bounds.
func (c DayWindowConfig) Window() (schedule.DayWindow, error) {
	start, err := model.ParseClock(c.Start)
	if err != nil {
		return schedule.DayWindow{}, fmt.Errorf("day window start: %w", err)
	}
	end, err := model.ParseClock(c.End)
	if err != nil {
		return schedule.DayWindow{}, fmt.Errorf("day window end: %w", err)
	}
	if end <= start {
		return schedule.DayWindow{}, fmt.Errorf("day window end %s not after start %s", c.End, c.Start)
	}
	return schedule.DayWindow{Start: start, End: end}, nil
}
