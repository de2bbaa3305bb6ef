package console

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// QueryState is the lifecycle state the console reports for a search job.
type QueryState string

const (
	QueryStateRunning  QueryState = "RUNNING"
	QueryStateFinished QueryState = "FINISHED"
	QueryStateFailed   QueryState = "FAILED"
	QueryStateCanceled QueryState = "CANCELED"
)

// Terminal reports whether no further state transitions can occur.
func (s QueryState) Terminal() bool {
	switch s {
	case QueryStateFinished, QueryStateFailed, QueryStateCanceled:
		return true
	}
	return false
}

// InitQueryRequest is the body for submitting a search job.
type InitQueryRequest struct {
	Query      string    `json:"query"`
	FromDate   time.Time `json:"fromDate"`
	ToDate     time.Time `json:"toDate"`
	SiteIDs    []string  `json:"siteIds,omitempty"`
	GroupIDs   []string  `json:"groupIds,omitempty"`
	AccountIDs []string  `json:"accountIds,omitempty"`
}

// QueryRef identifies a submitted search job. The id is assigned by the
// console and stays valid server-side even after the submitting caller has
// moved on.
type QueryRef struct {
	QueryID string     `json:"queryId"`
	Status  QueryState `json:"status"`
}

// QueryStatus is one snapshot of job progress. Progress is advisory; Error is
// populated only when the job failed.
type QueryStatus struct {
	QueryID  string     `json:"queryId"`
	State    QueryState `json:"status"`
	Progress int        `json:"progress"`
	Error    string     `json:"error"`
}

// Event is one telemetry record returned by a finished search job.
type Event struct {
	ID           string    `json:"id"`
	EventType    string    `json:"eventType"`
	EndpointName string    `json:"endpointName"`
	ProcessName  string    `json:"processName"`
	User         string    `json:"user,omitempty"`
	SHA256       string    `json:"sha256,omitempty"`
	Path         string    `json:"path,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EventPage is one page of results plus the continuation token, if any.
type EventPage struct {
	Events     []Event
	NextCursor string
}

// QueryEventsRequest addresses one page of a finished job's results.
type QueryEventsRequest struct {
	QueryID string
	Limit   int
	Cursor  string
}

// InitQuery submits a search job. A 409 response means the per-credential
// concurrency quota is saturated; callers decide whether to retry.
func (c *Client) InitQuery(ctx context.Context, req InitQueryRequest) (QueryRef, error) {
	if strings.TrimSpace(req.Query) == "" {
		return QueryRef{}, errors.New("search query is required")
	}

	var out struct {
		Data QueryRef `json:"data"`
	}
	err := c.do(ctx, requestParams{
		Method: http.MethodPost,
		Route:  "search/init-query",
		Body:   req,
	}, &out)
	if err != nil {
		return QueryRef{}, err
	}
	if out.Data.QueryID == "" {
		return QueryRef{}, &TransportError{Op: "POST search/init-query", Reason: "response missing queryId"}
	}
	return out.Data, nil
}

// QueryStatus fetches the current status snapshot for a search job.
func (c *Client) QueryStatus(ctx context.Context, queryID string) (QueryStatus, error) {
	queryID = strings.TrimSpace(queryID)
	if queryID == "" {
		return QueryStatus{}, errors.New("query id is required")
	}

	q := url.Values{}
	q.Set("queryId", queryID)

	var out struct {
		Data QueryStatus `json:"data"`
	}
	err := c.do(ctx, requestParams{
		Method: http.MethodGet,
		Route:  "search/query-status",
		Query:  q,
	}, &out)
	if err != nil {
		return QueryStatus{}, err
	}
	return out.Data, nil
}

// QueryEvents fetches one page of results for a finished search job. A 409
// response means the job has finished but its results are not yet queryable;
// callers decide whether to retry.
func (c *Client) QueryEvents(ctx context.Context, req QueryEventsRequest) (EventPage, error) {
	queryID := strings.TrimSpace(req.QueryID)
	if queryID == "" {
		return EventPage{}, errors.New("query id is required")
	}

	q := url.Values{}
	q.Set("queryId", queryID)
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}

	var out struct {
		Data       []Event `json:"data"`
		Pagination struct {
			NextCursor string `json:"nextCursor"`
		} `json:"pagination"`
	}
	err := c.do(ctx, requestParams{
		Method: http.MethodGet,
		Route:  "search/query-events",
		Query:  q,
	}, &out)
	if err != nil {
		return EventPage{}, err
	}
	return EventPage{Events: out.Data, NextCursor: out.Pagination.NextCursor}, nil
}
