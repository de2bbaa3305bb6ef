package config

import "time"

// WatchdogConfig controls the parent-process watchdog. When enabled, the
// service shuts itself down once the process that launched it exits, so a
// crashed caller does not leave an orphaned bridge holding console
// credentials.
type WatchdogConfig struct {
	Enabled  bool          `env:"ENABLED"  envDefault:"false"`
	Interval time.Duration `env:"INTERVAL" envDefault:"2s"`
}

// Sanitize applies guardrails to watchdog configuration values.
func (c *WatchdogConfig) Sanitize() {
	if c.Interval <= 0 {
		c.Interval = 2 * time.Second
	}
}
