package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - console.go: Endpoint-protection console client configuration
//   - search.go: Search job lifecycle configuration
//   - http.go: HTTP server configuration
//   - observability.go: Metrics configuration
//   - watchdog.go: Parent-process watchdog configuration
type AppConfig struct {
	// IsDev controls development mode behavior (looser auth, debug logging).
	IsDev bool `env:"DEV" envDefault:"false"`

	// Console client configuration
	Console ConsoleConfig `envPrefix:"CONSOLE_"`

	// Search job lifecycle configuration
	Search SearchConfig `envPrefix:"SEARCH_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Observability configuration
	Observability ObservabilityConfig

	// Watchdog configuration
	Watchdog WatchdogConfig `envPrefix:"WATCHDOG_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Console.Sanitize()
	c.Search.Sanitize()
	c.HTTP.Sanitize()
	c.Observability.Sanitize()
	c.Watchdog.Sanitize()
}
