package config

import "time"

// Config holds runtime settings for the GophTasks client.
type Config struct {
	ServerURL      string
	DBPath         string
	PageLimit      int
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000/api"
	c.DBPath = "gophtasks.db"
	c.PageLimit = 5
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
