// Package config holds runtime settings for the skyfare client.
//
// Sources are layered, later ones taking precedence:
//
//	defaults -> JSON file (-c/-config) -> environment -> command-line flags
package config

import "time"

// Config holds all runtime configuration for the client.
type Config struct {
	// Flight-search API transport.
	APIBaseURL string        `env:"SKYFARE_API_BASE_URL"`
	APIKey     string        `env:"SKYFARE_API_KEY"`
	APIHost    string        `env:"SKYFARE_API_HOST"`
	APITimeout time.Duration `env:"SKYFARE_API_TIMEOUT"`

	// Explicit retry wrapper defaults for callers that opt in.
	RetryCount int           `env:"SKYFARE_RETRY_COUNT"`
	RetryDelay time.Duration `env:"SKYFARE_RETRY_DELAY"`

	// Minimum idle time after the last keystroke before an airport
	// autocomplete request is issued.
	DebounceInterval time.Duration `env:"SKYFARE_DEBOUNCE_INTERVAL"`

	// Simulated network latency of the local auth directory.
	AuthLatency time.Duration `env:"SKYFARE_AUTH_LATENCY"`

	// Path of the on-device key-value store.
	StorePath string `env:"SKYFARE_STORE_PATH"`

	// Locale defaults applied to search requests when unset per call.
	Currency    string `env:"SKYFARE_CURRENCY"`
	Market      string `env:"SKYFARE_MARKET"`
	CountryCode string `env:"SKYFARE_COUNTRY_CODE"`
	Locale      string `env:"SKYFARE_LOCALE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://sky-scrapper.p.rapidapi.com"
	c.APIKey = ""
	c.APIHost = "sky-scrapper.p.rapidapi.com"
	c.APITimeout = 30 * time.Second
	c.RetryCount = 3
	c.RetryDelay = time.Second
	c.DebounceInterval = 300 * time.Millisecond
	c.AuthLatency = time.Second
	c.StorePath = "skyfare.db"
	c.Currency = "USD"
	c.Market = "en-US"
	c.CountryCode = "US"
	c.Locale = "en-US"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
