package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConsoleConfigSanitize(t *testing.T) {
	cfg := ConsoleConfig{
		BaseURL:        "  https://console.example.com/ ",
		APIToken:       " tok ",
		RequestTimeout: -1,
	}
	cfg.Sanitize()

	require.Equal(t, "https://console.example.com", cfg.BaseURL)
	require.Equal(t, "tok", cfg.APIToken)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestConsoleConfigValidate(t *testing.T) {
	cfg := ConsoleConfig{}
	require.Error(t, cfg.Validate())

	cfg.BaseURL = "https://console.example.com"
	require.Error(t, cfg.Validate())

	cfg.APIToken = "tok"
	require.NoError(t, cfg.Validate())
}

func TestSearchConfigSanitizeClampsBudgets(t *testing.T) {
	cfg := SearchConfig{
		CreateAttempts: 0,
		CreateDelay:    -time.Second,
		FetchAttempts:  -5,
		PollInterval:   0,
		MaxPolls:       0,
	}
	cfg.Sanitize()

	require.Equal(t, 1, cfg.CreateAttempts)
	require.Equal(t, time.Duration(0), cfg.CreateDelay)
	require.Equal(t, 1, cfg.FetchAttempts)
	require.Equal(t, time.Second, cfg.PollInterval)
	require.Equal(t, 1, cfg.MaxPolls)
}

func TestSearchConfigSanitizeKeepsExplicitValues(t *testing.T) {
	cfg := SearchConfig{
		CreateAttempts: 5,
		CreateDelay:    10 * time.Second,
		FetchAttempts:  2,
		FetchDelay:     time.Second,
		PollInterval:   500 * time.Millisecond,
		MaxPolls:       60,
	}
	cfg.Sanitize()

	require.Equal(t, 5, cfg.CreateAttempts)
	require.Equal(t, 10*time.Second, cfg.CreateDelay)
	require.Equal(t, 60, cfg.MaxPolls)
}

func TestHTTPConfigSanitize(t *testing.T) {
	cfg := HTTPConfig{Addr: "  ", APIToken: " tok "}
	cfg.Sanitize()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "tok", cfg.APIToken)
}

func TestMetricsConfigDisabledWithoutAddress(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "  "}
	cfg.Sanitize()
	require.False(t, cfg.IsEnabled())

	cfg = ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "127.0.0.1:8125"}
	cfg.Sanitize()
	require.True(t, cfg.IsEnabled())
}

func TestWatchdogConfigSanitize(t *testing.T) {
	cfg := WatchdogConfig{Interval: 0}
	cfg.Sanitize()
	require.Equal(t, 2*time.Second, cfg.Interval)
}

func TestAppConfigSanitizeCascades(t *testing.T) {
	cfg := AppConfig{}
	cfg.Sanitize()
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 30*time.Second, cfg.Console.RequestTimeout)
	require.Equal(t, 1, cfg.Search.CreateAttempts)
}
