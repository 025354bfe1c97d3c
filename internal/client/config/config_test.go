package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "https://sky-scrapper.p.rapidapi.com", cfg.APIBaseURL)
	require.Equal(t, "sky-scrapper.p.rapidapi.com", cfg.APIHost)
	require.Equal(t, 30*time.Second, cfg.APITimeout)
	require.Equal(t, 3, cfg.RetryCount)
	require.Equal(t, time.Second, cfg.RetryDelay)
	require.Equal(t, 300*time.Millisecond, cfg.DebounceInterval)
	require.Equal(t, "USD", cfg.Currency)
	require.Equal(t, "en-US", cfg.Market)
	require.Equal(t, "US", cfg.CountryCode)
}

func TestParseEnvOverridesDefaults(t *testing.T) {
	t.Setenv("SKYFARE_API_KEY", "test-key")
	t.Setenv("SKYFARE_DEBOUNCE_INTERVAL", "150ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "test-key", cfg.APIKey)
	require.Equal(t, 150*time.Millisecond, cfg.DebounceInterval)
	// untouched fields keep their defaults
	require.Equal(t, "USD", cfg.Currency)
}

func TestParseJSONOverlay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	data, err := json.Marshal(map[string]any{
		"api_base_url":   "https://proxy.example.com",
		"api_timeout_ms": 5000,
		"currency":       "EUR",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	origArgs := os.Args
	os.Args = []string{"skyfare", "-c", file}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "https://proxy.example.com", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.APITimeout)
	require.Equal(t, "EUR", cfg.Currency)
	require.Equal(t, "en-US", cfg.Market)
}

func TestParseFlagsOverridesEverything(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"skyfare", "-a", "https://flags.example.com", "-s", "alt.db"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "https://flags.example.com", cfg.APIBaseURL)
	require.Equal(t, "alt.db", cfg.StorePath)
}
