package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/target/edr-bridge/internal/errors"
	"github.com/target/edr-bridge/internal/format"
	"github.com/target/edr-bridge/internal/search"
)

const (
	defaultSearchLimit  = 20
	maxSearchLimit      = 1000
	defaultSearchWindow = 24 * time.Hour
)

func (r *Registry) registerSearchTools() {
	r.register(&Tool{
		Name: "search_events",
		Description: "Run a free-text search over historical endpoint telemetry. " +
			"Searches execute as asynchronous console jobs and may take up to half a minute.",
		Schema: objectSchema(map[string]any{
			"query":      stringProp("The search query, e.g. `SHA256 = \"<64 hex chars>\"`."),
			"fromDate":   stringProp("Start of the time range, RFC3339. Defaults to 24h before toDate."),
			"toDate":     stringProp("End of the time range, RFC3339. Defaults to now."),
			"siteIds":    stringListProp("Restrict to these site ids."),
			"groupIds":   stringListProp("Restrict to these group ids."),
			"accountIds": stringListProp("Restrict to these account ids."),
			"limit":      intProp("Maximum number of events to return (default 20, max 1000)."),
			"fields":     stringProp("Optional JMESPath expression projecting each event record."),
		}, "query"),
		run: r.searchEvents,
	})
}

type searchEventsArgs struct {
	Query      string   `json:"query"`
	FromDate   string   `json:"fromDate"`
	ToDate     string   `json:"toDate"`
	SiteIDs    []string `json:"siteIds"`
	GroupIDs   []string `json:"groupIds"`
	AccountIDs []string `json:"accountIds"`
	Limit      int      `json:"limit"`
	Fields     string   `json:"fields"`
}

func (r *Registry) searchEvents(ctx context.Context, raw json.RawMessage) (string, error) {
	var args searchEventsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	req, err := r.buildSearchRequest(args)
	if err != nil {
		return "", err
	}

	outcome, err := r.search.Run(ctx, req)
	if err != nil {
		return "", consoleError(err)
	}
	return r.renderOutcome(outcome, args.Fields)
}

// buildSearchRequest validates and normalises the caller's arguments. Every
// rejection happens here, before a job is submitted to the console.
func (r *Registry) buildSearchRequest(args searchEventsArgs) (search.Request, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return search.Request{}, apperrors.Validation("query is required")
	}
	if err := validateHashLiterals(query); err != nil {
		return search.Request{}, err
	}
	if err := format.ValidateProjection(args.Fields); err != nil {
		return search.Request{}, apperrors.Validationf("%v", err)
	}

	to := r.now().UTC()
	if strings.TrimSpace(args.ToDate) != "" {
		parsed, err := time.Parse(time.RFC3339, args.ToDate)
		if err != nil {
			return search.Request{}, apperrors.Validationf("toDate %q is not a valid RFC3339 timestamp", args.ToDate)
		}
		to = parsed
	}
	from := to.Add(-defaultSearchWindow)
	if strings.TrimSpace(args.FromDate) != "" {
		parsed, err := time.Parse(time.RFC3339, args.FromDate)
		if err != nil {
			return search.Request{}, apperrors.Validationf("fromDate %q is not a valid RFC3339 timestamp", args.FromDate)
		}
		from = parsed
	}
	if !from.Before(to) {
		return search.Request{}, apperrors.Validation("fromDate must be before toDate")
	}

	return search.Request{
		Query:      query,
		FromDate:   from,
		ToDate:     to,
		SiteIDs:    args.SiteIDs,
		GroupIDs:   args.GroupIDs,
		AccountIDs: args.AccountIDs,
		Limit:      clampLimit(args.Limit, defaultSearchLimit, maxSearchLimit),
	}, nil
}

// renderOutcome turns each terminal outcome into distinct caller-facing text.
// Outcomes that leave a live remote job behind include the queryId so the
// caller can follow up out-of-band.
func (r *Registry) renderOutcome(outcome *search.Outcome, fields string) (string, error) {
	switch outcome.Kind {
	case search.OutcomeResults:
		return r.renderResults(outcome, fields)
	case search.OutcomeFailed:
		return fmt.Sprintf("Search failed: %s", outcome.Detail), nil
	case search.OutcomeTimedOut:
		return fmt.Sprintf(
			"Search did not complete within the polling budget. Query %s is still running on the console; "+
				"retry later with this id to check its status or fetch results.", outcome.QueryID), nil
	case search.OutcomeFetchExhausted:
		return fmt.Sprintf(
			"Search %s completed but its results are not yet queryable. Retry the fetch shortly with this id.",
			outcome.QueryID), nil
	case search.OutcomeSlotBusyExhausted:
		return "The console's concurrent search limit is saturated. Try again in a few moments.", nil
	default:
		return "", apperrors.Internal(fmt.Sprintf("unknown search outcome %q", outcome.Kind), nil)
	}
}

func (r *Registry) renderResults(outcome *search.Outcome, fields string) (string, error) {
	if len(outcome.Events) == 0 {
		return fmt.Sprintf("Query %s completed with no matching events.", outcome.QueryID), nil
	}

	var body string
	if strings.TrimSpace(fields) != "" {
		projected, err := format.ProjectEvents(outcome.Events, fields)
		if err != nil {
			return "", apperrors.Validationf("%v", err)
		}
		body = projected
	} else {
		body = format.Events(outcome.Events, r.now())
	}

	header := fmt.Sprintf("Query %s returned %d events:", outcome.QueryID, len(outcome.Events))
	text := header + "\n" + body
	if outcome.NextCursor != "" {
		text += fmt.Sprintf("\nMore events are available (cursor %s).", outcome.NextCursor)
	}
	return text, nil
}
