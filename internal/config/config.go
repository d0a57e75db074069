package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the workbench. Fields may be
// loaded from a JSON file; absent files yield defaults.
type Config struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	CameraDevice int    `json:"camera_device"`
	JPEGQuality  int    `json:"jpeg_quality"`
	HistorySize  int    `json:"history_size"`
	LogLevel     string `json:"log_level"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1000,
		WindowHeight: 700,
		CameraDevice: 0,
		JPEGQuality:  92,
		HistorySize:  32,
		LogLevel:     "info",
	}
}

// Validate clamps values to safe ranges.
func (c *Config) Validate() error {
	if c.WindowWidth < 400 {
		c.WindowWidth = 400
	}
	if c.WindowHeight < 300 {
		c.WindowHeight = 300
	}
	if c.CameraDevice < 0 {
		c.CameraDevice = 0
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 92
	}
	if c.HistorySize < 1 {
		c.HistorySize = 32
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
