package config

import "time"

// Config holds runtime settings for the chargecli client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - GoogleClientID: OAuth client id; empty disables the embedded Google flow.
//   - RequestTimeout: per-request deadline for backend calls.
//   - DatabasePath: sqlite file holding the persisted session.
//   - SecretPath: file holding the local sealing secret.
//   - CallbackAddr: loopback listen address for the OAuth redirect flow.
type Config struct {
	APIBaseURL     string
	GoogleClientID string
	RequestTimeout time.Duration
	DatabasePath   string
	SecretPath     string
	CallbackAddr   string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.GoogleClientID = ""
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "chargecli.db"
	c.SecretPath = "chargecli.secret"
	c.CallbackAddr = "127.0.0.1:53682"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
