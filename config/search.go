package config

import "time"

// SearchConfig contains the search job lifecycle configuration. Creation and
// fetch retries are independent budgets; polling has its own interval and cap.
type SearchConfig struct {
	// CreateAttempts is the number of job creation attempts when the
	// console's concurrent search slots are saturated.
	CreateAttempts int `env:"CREATE_ATTEMPTS" envDefault:"3"`

	// CreateDelay is the pause between job creation attempts.
	CreateDelay time.Duration `env:"CREATE_DELAY" envDefault:"5s"`

	// FetchAttempts is the number of result fetch attempts while the
	// console has not yet made a finished job's results queryable.
	FetchAttempts int `env:"FETCH_ATTEMPTS" envDefault:"3"`

	// FetchDelay is the pause between result fetch attempts.
	FetchDelay time.Duration `env:"FETCH_DELAY" envDefault:"2s"`

	// PollInterval is the pause between job status polls.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`

	// MaxPolls caps the number of status polls before a running job is
	// abandoned.
	MaxPolls int `env:"MAX_POLLS" envDefault:"30"`
}

// Sanitize applies guardrails to search configuration values.
func (c *SearchConfig) Sanitize() {
	if c.CreateAttempts < 1 {
		c.CreateAttempts = 1
	}
	if c.CreateDelay < 0 {
		c.CreateDelay = 0
	}
	if c.FetchAttempts < 1 {
		c.FetchAttempts = 1
	}
	if c.FetchDelay < 0 {
		c.FetchDelay = 0
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
	if c.MaxPolls < 1 {
		c.MaxPolls = 1
	}
}
