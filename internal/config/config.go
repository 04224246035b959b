// Package config handles trace configuration loading.
package config

// Config holds all settings for a trace run.
type Config struct {
	Resolution int           `yaml:"resolution"` // scene pixel grid size
	Scene      string        `yaml:"scene"`      // built-in scene, used when no stars are listed
	Output     OutputConfig  `yaml:"output"`
	Logging    LoggingConfig `yaml:"logging"`
	Stars      []StarConfig  `yaml:"stars"`
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Dir    string   `yaml:"dir"`
	Format string   `yaml:"format"` // png or bmp
	Arrays []string `yaml:"arrays"` // grids to render: flux, mu, t
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// StarConfig describes one star body.
type StarConfig struct {
	Center      [3]float64   `yaml:"center"`
	Radius      float64      `yaml:"radius"`
	Axis        [3]float64   `yaml:"axis"`
	Resolution  int          `yaml:"resolution"` // surface grid size
	Inclination *float64     `yaml:"inclination,omitempty"`
	Meridian    *float64     `yaml:"meridian,omitempty"`
	U1          float64      `yaml:"u1"`
	U2          float64      `yaml:"u2"`
	Spots       []SpotConfig `yaml:"spots"`
}

// SpotConfig describes one surface spot in degrees.
type SpotConfig struct {
	Lat      float64 `yaml:"lat"`
	Lon      float64 `yaml:"lon"`
	Radius   float64 `yaml:"radius"`
	Contrast float64 `yaml:"contrast"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Resolution: 200,
		Scene:      "spotted",
		Output: OutputConfig{
			Dir:    "output",
			Format: "png",
			Arrays: []string{"flux"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
