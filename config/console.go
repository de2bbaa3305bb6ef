package config

import (
	"errors"
	"strings"
	"time"
)

const defaultConsoleTimeout = 30 * time.Second

// ConsoleConfig contains the endpoint-protection console client configuration.
type ConsoleConfig struct {
	// BaseURL is the console management URL, e.g. "https://console.example.com".
	BaseURL string `env:"BASE_URL"`

	// APIToken is the console API token presented as a bearer credential.
	APIToken string `env:"API_TOKEN"`

	// RequestTimeout bounds every individual console call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to console configuration values.
func (c *ConsoleConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.APIToken = strings.TrimSpace(c.APIToken)
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultConsoleTimeout
	}
}

// Validate reports configuration the service cannot start without.
func (c *ConsoleConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("CONSOLE_BASE_URL is required")
	}
	if c.APIToken == "" {
		return errors.New("CONSOLE_API_TOKEN is required")
	}
	return nil
}
