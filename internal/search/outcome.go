package search

import "github.com/target/edr-bridge/internal/console"

// OutcomeKind discriminates the mutually exclusive terminal results of one
// search invocation. Expected platform conditions end up here as data rather
// than as errors, so callers can tell "this will never work" apart from "try
// again in a moment".
type OutcomeKind string

const (
	// OutcomeResults means the job finished and a result page was fetched.
	// An empty page is still OutcomeResults.
	OutcomeResults OutcomeKind = "results"
	// OutcomeFailed means the console reported the job FAILED or CANCELED.
	// Never retried.
	OutcomeFailed OutcomeKind = "failed"
	// OutcomeTimedOut means the poll budget ran out while the job was still
	// running. QueryID stays valid so the caller can resume out-of-band.
	OutcomeTimedOut OutcomeKind = "timed_out"
	// OutcomeFetchExhausted means the job finished but its results never
	// became queryable within the fetch retry budget. QueryID stays valid
	// for a later manual fetch.
	OutcomeFetchExhausted OutcomeKind = "fetch_exhausted"
	// OutcomeSlotBusyExhausted means every creation attempt hit the
	// per-credential concurrency quota. No job was created.
	OutcomeSlotBusyExhausted OutcomeKind = "slot_busy_exhausted"
)

// Outcome is the terminal result of one lifecycle invocation.
type Outcome struct {
	Kind       OutcomeKind
	QueryID    string
	Events     []console.Event
	NextCursor string
	Detail     string
}
