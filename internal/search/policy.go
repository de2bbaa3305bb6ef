package search

import (
	"net/http"
	"time"

	"github.com/target/edr-bridge/internal/console"
)

// Reference defaults for the two retry policies and the poll loop. The
// creation and fetch policies are deliberately separate: creation absorbs the
// console's admission-control quota, fetch absorbs the read-after-write lag
// between a job finishing and its results becoming queryable. Both happen to
// signal via 409, but they guard unrelated behaviours and keep independent
// budgets.
const (
	DefaultCreateAttempts = 3
	DefaultCreateDelay    = 5 * time.Second
	DefaultFetchAttempts  = 3
	DefaultFetchDelay     = 2 * time.Second
	DefaultPollInterval   = time.Second
	DefaultMaxPolls       = 30
)

// RetryPolicy bounds one retryable transition of the job lifecycle.
type RetryPolicy struct {
	// MaxAttempts caps attempts, including the first.
	MaxAttempts int
	// Delay is the fixed wait between attempts.
	Delay time.Duration
	// Retryable classifies an error as transient for this transition. Any
	// error it rejects is fatal for the whole invocation.
	Retryable func(error) bool
}

func (p RetryPolicy) withDefaults(attempts int, delay time.Duration) RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = attempts
	}
	if p.Delay <= 0 {
		p.Delay = delay
	}
	if p.Retryable == nil {
		p.Retryable = StatusRetryable(http.StatusConflict)
	}
	return p
}

// StatusRetryable returns a predicate that treats exactly one HTTP status
// code as transient. The predicate inspects the structured status carried by
// the console client's error type, never the error text.
func StatusRetryable(code int) func(error) bool {
	return func(err error) bool {
		return console.IsStatus(err, code)
	}
}
