package config

import "time"

// Config holds runtime settings for the Logix CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Logix REST backend.
//   - RequestTimeout: per-request HTTP timeout.
//   - ReferenceStaleTime: how long cached vehicle/driver/user lists are
//     served without asking the backend again.
//   - DatabasePath: sqlite file holding the persisted session.
type Config struct {
	APIBaseURL         string
	RequestTimeout     time.Duration
	ReferenceStaleTime time.Duration
	DatabasePath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 15 * time.Second
	c.ReferenceStaleTime = 5 * time.Minute
	c.DatabasePath = "logix.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
