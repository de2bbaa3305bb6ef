package console

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Threat is one detection reported by the console.
type Threat struct {
	ID               string    `json:"id"`
	Name             string    `json:"threatName"`
	Classification   string    `json:"classification"`
	ConfidenceLevel  string    `json:"confidenceLevel"`
	FilePath         string    `json:"filePath"`
	SHA256           string    `json:"sha256"`
	AgentID          string    `json:"agentId"`
	AgentName        string    `json:"agentComputerName"`
	SiteID           string    `json:"siteId"`
	MitigationStatus string    `json:"mitigationStatus"`
	Resolved         bool      `json:"resolved"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ThreatListOptions are the optional filters for ListThreats. Zero values are
// omitted from the query string.
type ThreatListOptions struct {
	Limit           int
	Query           string
	Classifications []string
	Resolved        *bool
	SiteIDs         []string
	IDs             []string
}

func (o ThreatListOptions) values() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if s := strings.TrimSpace(o.Query); s != "" {
		q.Set("query", s)
	}
	setCSV(q, "classifications", o.Classifications)
	if o.Resolved != nil {
		q.Set("resolved", strconv.FormatBool(*o.Resolved))
	}
	setCSV(q, "siteIds", o.SiteIDs)
	setCSV(q, "ids", o.IDs)
	return q
}

// ListThreats fetches threats matching the given filters.
func (c *Client) ListThreats(ctx context.Context, opts ThreatListOptions) ([]Threat, error) {
	var out struct {
		Data []Threat `json:"data"`
	}
	err := c.do(ctx, requestParams{
		Method: http.MethodGet,
		Route:  "threats",
		Query:  opts.values(),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("list threats: %w", err)
	}
	return out.Data, nil
}

// GetThreat fetches a single threat by id. Returns ErrNotFound when the
// console reports no match.
func (c *Client) GetThreat(ctx context.Context, id string) (*Threat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("threat id is required")
	}
	threats, err := c.ListThreats(ctx, ThreatListOptions{IDs: []string{id}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(threats) == 0 {
		return nil, fmt.Errorf("threat %s: %w", id, ErrNotFound)
	}
	return &threats[0], nil
}

// MitigationAction enumerates the remediation actions the console accepts for
// a threat.
type MitigationAction string

const (
	MitigationKill                MitigationAction = "kill"
	MitigationQuarantine          MitigationAction = "quarantine"
	MitigationRemediate           MitigationAction = "remediate"
	MitigationRollbackRemediation MitigationAction = "rollback-remediation"
)

// Valid reports whether the action is one the console accepts.
func (a MitigationAction) Valid() bool {
	switch a {
	case MitigationKill, MitigationQuarantine, MitigationRemediate, MitigationRollbackRemediation:
		return true
	}
	return false
}

// MitigateThreat applies a mitigation action to one threat and returns the
// number of threats the console reports as affected.
func (c *Client) MitigateThreat(ctx context.Context, threatID string, action MitigationAction) (int, error) {
	threatID = strings.TrimSpace(threatID)
	if threatID == "" {
		return 0, errors.New("threat id is required")
	}
	if !action.Valid() {
		return 0, fmt.Errorf("unsupported mitigation action %q", action)
	}

	var out struct {
		Data struct {
			Affected int `json:"affected"`
		} `json:"data"`
	}
	err := c.do(ctx, requestParams{
		Method: http.MethodPost,
		Route:  "threats/mitigate/" + string(action),
		Body:   idFilterBody(threatID),
	}, &out)
	if err != nil {
		return 0, fmt.Errorf("mitigate threat: %w", err)
	}
	return out.Data.Affected, nil
}

// idFilterBody is the console's standard action body shape.
func idFilterBody(ids ...string) map[string]any {
	return map[string]any{
		"filter": map[string]any{"ids": ids},
	}
}

func setCSV(q url.Values, key string, values []string) {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) > 0 {
		q.Set(key, strings.Join(cleaned, ","))
	}
}
