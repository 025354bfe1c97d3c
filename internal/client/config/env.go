package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with values from SKYFARE_* environment variables.
// Variables that are unset leave the current values untouched; durations use
// Go syntax ("300ms", "30s").
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
