package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the defaults merged with the YAML file at path. An empty
// path yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail deep inside a
// trace run.
func (c *Config) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", c.Resolution)
	}
	if c.Output.Format != "png" && c.Output.Format != "bmp" {
		return fmt.Errorf("output format must be png or bmp, got %q", c.Output.Format)
	}
	for i, star := range c.Stars {
		if star.Radius <= 0 {
			return fmt.Errorf("star %d: radius must be positive, got %g", i, star.Radius)
		}
		if star.Resolution <= 0 {
			return fmt.Errorf("star %d: resolution must be positive, got %d", i, star.Resolution)
		}
		if star.Axis == [3]float64{} {
			return fmt.Errorf("star %d: spin axis must be nonzero", i)
		}
	}
	return nil
}
