// Package search drives one console search job from submission to a terminal
// outcome, hiding the platform's concurrency and consistency quirks from the
// caller.
//
// Each invocation walks a strictly sequential state machine:
//
//	CREATING -> POLLING -> {FINISHED, FAILED, TIMED_OUT}
//	                 FINISHED -> FETCHING -> {RESULTS, FETCH_EXHAUSTED}
//
// Creation retries absorb the console's per-credential concurrency quota;
// fetch retries absorb the lag between a job finishing and its results
// becoming queryable. Exhausting either budget degrades to a soft terminal
// outcome instead of an error. Remote jobs abandoned by a TIMED_OUT or
// FETCH_EXHAUSTED outcome keep running server-side; their queryId remains
// usable out-of-band.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/target/edr-bridge/internal/console"
	"github.com/target/edr-bridge/internal/observability/statsd"
)

// API is the slice of the console client the runner drives.
type API interface {
	InitQuery(ctx context.Context, req console.InitQueryRequest) (console.QueryRef, error)
	QueryStatus(ctx context.Context, queryID string) (console.QueryStatus, error)
	QueryEvents(ctx context.Context, req console.QueryEventsRequest) (console.EventPage, error)
}

// SleepFunc suspends until the duration elapses or ctx is done. Injected so
// retry budgets and delays are testable without wall-clock waits.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config bounds the three phases of the lifecycle. Zero values take the
// package defaults.
type Config struct {
	Create       RetryPolicy
	Fetch        RetryPolicy
	PollInterval time.Duration
	MaxPolls     int
}

func (c Config) withDefaults() Config {
	c.Create = c.Create.withDefaults(DefaultCreateAttempts, DefaultCreateDelay)
	c.Fetch = c.Fetch.withDefaults(DefaultFetchAttempts, DefaultFetchDelay)
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.MaxPolls <= 0 {
		c.MaxPolls = DefaultMaxPolls
	}
	return c
}

// RunnerOptions groups dependencies for NewRunner.
type RunnerOptions struct {
	API     API
	Config  Config
	Logger  *slog.Logger
	Metrics statsd.Sink
	Sleep   SleepFunc
}

// Runner executes search job lifecycles. Invocations are independent; the
// runner keeps no state between them.
type Runner struct {
	api     API
	cfg     Config
	logger  *slog.Logger
	metrics statsd.Sink
	sleep   SleepFunc
}

// NewRunner constructs a Runner.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.API == nil {
		return nil, errors.New("console search API is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	return &Runner{
		api:     opts.API,
		cfg:     opts.Config.withDefaults(),
		logger:  logger,
		metrics: opts.Metrics,
		sleep:   sleep,
	}, nil
}

// Request describes one search invocation.
type Request struct {
	Query      string
	FromDate   time.Time
	ToDate     time.Time
	SiteIDs    []string
	GroupIDs   []string
	AccountIDs []string
	// Limit caps the fetched result page. The continuation cursor, if any,
	// is surfaced in the outcome; pagination beyond the first page belongs
	// to the caller.
	Limit int
}

// Run drives one job to a terminal outcome. A non-nil error means a fatal
// transport or API failure (or caller cancellation); every expected platform
// condition is returned as an Outcome instead.
func (r *Runner) Run(ctx context.Context, req Request) (*Outcome, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.New("search query is required")
	}

	outcome, err := r.run(ctx, req)
	if outcome != nil {
		r.count(outcome.Kind)
	}
	return outcome, err
}

func (r *Runner) run(ctx context.Context, req Request) (*Outcome, error) {
	ref, outcome, err := r.create(ctx, req)
	if outcome != nil || err != nil {
		return outcome, err
	}

	status, outcome, err := r.poll(ctx, ref.QueryID)
	if outcome != nil || err != nil {
		return outcome, err
	}

	switch status.State {
	case console.QueryStateFinished:
		return r.fetch(ctx, ref.QueryID, req.Limit)
	case console.QueryStateFailed, console.QueryStateCanceled:
		return &Outcome{
			Kind:    OutcomeFailed,
			QueryID: ref.QueryID,
			Detail:  failureDetail(status),
		}, nil
	default:
		return nil, fmt.Errorf("query %s: unexpected terminal state %q", ref.QueryID, status.State)
	}
}

// create submits the job, retrying while the console's concurrency quota is
// saturated. Any error the creation policy does not classify as retryable is
// fatal and aborts the invocation with zero further attempts.
func (r *Runner) create(ctx context.Context, req Request) (console.QueryRef, *Outcome, error) {
	policy := r.cfg.Create
	for attempt := 1; ; attempt++ {
		ref, err := r.api.InitQuery(ctx, console.InitQueryRequest{
			Query:      req.Query,
			FromDate:   req.FromDate,
			ToDate:     req.ToDate,
			SiteIDs:    req.SiteIDs,
			GroupIDs:   req.GroupIDs,
			AccountIDs: req.AccountIDs,
		})
		if err == nil {
			return ref, nil, nil
		}
		if !policy.Retryable(err) {
			return console.QueryRef{}, nil, fmt.Errorf("init query: %w", err)
		}
		if attempt >= policy.MaxAttempts {
			r.logger.InfoContext(ctx, "search slot busy, retries exhausted",
				"attempts", attempt)
			return console.QueryRef{}, &Outcome{Kind: OutcomeSlotBusyExhausted}, nil
		}
		r.logger.DebugContext(ctx, "search slot busy, retrying",
			"attempt", attempt,
			"max_attempts", policy.MaxAttempts,
			"delay", policy.Delay)
		if serr := r.sleep(ctx, policy.Delay); serr != nil {
			return console.QueryRef{}, nil, serr
		}
	}
}

// poll re-fetches job status until a terminal state is observed or the poll
// budget runs out. It stops the instant a non-RUNNING state appears and never
// polls a terminal job again.
func (r *Runner) poll(ctx context.Context, queryID string) (console.QueryStatus, *Outcome, error) {
	for i := range r.cfg.MaxPolls {
		if i > 0 {
			if err := r.sleep(ctx, r.cfg.PollInterval); err != nil {
				return console.QueryStatus{}, nil, err
			}
		}
		status, err := r.api.QueryStatus(ctx, queryID)
		if err != nil {
			return console.QueryStatus{}, nil, fmt.Errorf("query status: %w", err)
		}
		if status.State.Terminal() {
			return status, nil, nil
		}
		r.logger.DebugContext(ctx, "search still running",
			"query_id", queryID,
			"poll", i+1,
			"progress", status.Progress)
	}
	r.logger.InfoContext(ctx, "search poll budget exhausted",
		"query_id", queryID,
		"max_polls", r.cfg.MaxPolls)
	return console.QueryStatus{}, &Outcome{Kind: OutcomeTimedOut, QueryID: queryID}, nil
}

// fetch retrieves the first result page, retrying while the console reports
// the results as not yet queryable.
func (r *Runner) fetch(ctx context.Context, queryID string, limit int) (*Outcome, error) {
	policy := r.cfg.Fetch
	for attempt := 1; ; attempt++ {
		page, err := r.api.QueryEvents(ctx, console.QueryEventsRequest{
			QueryID: queryID,
			Limit:   limit,
		})
		if err == nil {
			return &Outcome{
				Kind:       OutcomeResults,
				QueryID:    queryID,
				Events:     page.Events,
				NextCursor: page.NextCursor,
			}, nil
		}
		if !policy.Retryable(err) {
			return nil, fmt.Errorf("query events: %w", err)
		}
		if attempt >= policy.MaxAttempts {
			r.logger.InfoContext(ctx, "search results not yet queryable, retries exhausted",
				"query_id", queryID,
				"attempts", attempt)
			return &Outcome{Kind: OutcomeFetchExhausted, QueryID: queryID}, nil
		}
		r.logger.DebugContext(ctx, "search results not yet queryable, retrying",
			"query_id", queryID,
			"attempt", attempt,
			"max_attempts", policy.MaxAttempts)
		if serr := r.sleep(ctx, policy.Delay); serr != nil {
			return nil, serr
		}
	}
}

// failureDetail surfaces the console's failure text when present. CANCELED
// jobs carry no error text; both fall back to a generic message.
func failureDetail(status console.QueryStatus) string {
	if strings.TrimSpace(status.Error) != "" {
		return status.Error
	}
	if status.State == console.QueryStateCanceled {
		return "query was canceled by the console"
	}
	return "query failed for an unknown reason"
}

func (r *Runner) count(kind OutcomeKind) {
	if r.metrics == nil {
		return
	}
	r.metrics.Count("search.outcome", 1, map[string]string{"kind": string(kind)})
}

// sleepContext is the production SleepFunc: a timer wait that aborts cleanly
// when the caller's context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
