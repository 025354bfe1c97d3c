package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ekaraman/skyfare/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in milliseconds so the file stays plain-numbers-only. After parsing,
// non-zero values are copied into the runtime Config.
type jsonConfig struct {
	APIBaseURL         string `json:"api_base_url"`
	APIKey             string `json:"api_key"`
	APIHost            string `json:"api_host"`
	APITimeoutMs       int    `json:"api_timeout_ms"`
	RetryCount         int    `json:"retry_count"`
	RetryDelayMs       int    `json:"retry_delay_ms"`
	DebounceIntervalMs int    `json:"debounce_interval_ms"`
	AuthLatencyMs      int    `json:"auth_latency_ms"`
	StorePath          string `json:"store_path"`
	Currency           string `json:"currency"`
	Market             string `json:"market"`
	CountryCode        string `json:"country_code"`
	Locale             string `json:"locale"`
}

// parseJSON overlays Config with values loaded from the JSON file named by the
// -c/-config flags. When no file is named the function is a no-op; read or
// unmarshal errors panic (caller may recover if desired).
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.APIHost != "" {
		cfg.APIHost = jc.APIHost
	}
	if jc.APITimeoutMs > 0 {
		cfg.APITimeout = time.Duration(jc.APITimeoutMs) * time.Millisecond
	}
	if jc.RetryCount > 0 {
		cfg.RetryCount = jc.RetryCount
	}
	if jc.RetryDelayMs > 0 {
		cfg.RetryDelay = time.Duration(jc.RetryDelayMs) * time.Millisecond
	}
	if jc.DebounceIntervalMs > 0 {
		cfg.DebounceInterval = time.Duration(jc.DebounceIntervalMs) * time.Millisecond
	}
	if jc.AuthLatencyMs > 0 {
		cfg.AuthLatency = time.Duration(jc.AuthLatencyMs) * time.Millisecond
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.Currency != "" {
		cfg.Currency = jc.Currency
	}
	if jc.Market != "" {
		cfg.Market = jc.Market
	}
	if jc.CountryCode != "" {
		cfg.CountryCode = jc.CountryCode
	}
	if jc.Locale != "" {
		cfg.Locale = jc.Locale
	}
}
