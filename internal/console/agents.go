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

// Agent is one managed endpoint reported by the console.
type Agent struct {
	ID            string    `json:"id"`
	ComputerName  string    `json:"computerName"`
	OSName        string    `json:"osName"`
	AgentVersion  string    `json:"agentVersion"`
	Domain        string    `json:"domain"`
	ExternalIP    string    `json:"externalIp"`
	IsActive      bool      `json:"isActive"`
	Infected      bool      `json:"infected"`
	NetworkStatus string    `json:"networkStatus"`
	SiteID        string    `json:"siteId"`
	LastActiveAt  time.Time `json:"lastActiveDate"`
}

// AgentListOptions are the optional filters for ListAgents. Zero values are
// omitted from the query string.
type AgentListOptions struct {
	Limit    int
	Query    string
	IsActive *bool
	Infected *bool
	SiteIDs  []string
	IDs      []string
}

func (o AgentListOptions) values() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if s := strings.TrimSpace(o.Query); s != "" {
		q.Set("query", s)
	}
	if o.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*o.IsActive))
	}
	if o.Infected != nil {
		q.Set("infected", strconv.FormatBool(*o.Infected))
	}
	setCSV(q, "siteIds", o.SiteIDs)
	setCSV(q, "ids", o.IDs)
	return q
}

// ListAgents fetches agents matching the given filters.
func (c *Client) ListAgents(ctx context.Context, opts AgentListOptions) ([]Agent, error) {
	var out struct {
		Data []Agent `json:"data"`
	}
	err := c.do(ctx, requestParams{
		Method: http.MethodGet,
		Route:  "agents",
		Query:  opts.values(),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return out.Data, nil
}

// GetAgent fetches a single agent by id. Returns ErrNotFound when the console
// reports no match.
func (c *Client) GetAgent(ctx context.Context, id string) (*Agent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("agent id is required")
	}
	agents, err := c.ListAgents(ctx, AgentListOptions{IDs: []string{id}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		return nil, fmt.Errorf("agent %s: %w", id, ErrNotFound)
	}
	return &agents[0], nil
}

// IsolateAgent disconnects one agent from the network, leaving only its
// console management channel. Returns the affected count.
func (c *Client) IsolateAgent(ctx context.Context, agentID string) (int, error) {
	return c.agentAction(ctx, agentID, "disconnect")
}

// ReconnectAgent lifts a previous isolation. Returns the affected count.
func (c *Client) ReconnectAgent(ctx context.Context, agentID string) (int, error) {
	return c.agentAction(ctx, agentID, "connect")
}

func (c *Client) agentAction(ctx context.Context, agentID, action string) (int, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return 0, errors.New("agent id is required")
	}

	var out struct {
		Data struct {
			Affected int `json:"affected"`
		} `json:"data"`
	}
	err := c.do(ctx, requestParams{
		Method: http.MethodPost,
		Route:  "agents/actions/" + action,
		Body:   idFilterBody(agentID),
	}, &out)
	if err != nil {
		return 0, fmt.Errorf("agent %s: %w", action, err)
	}
	return out.Data.Affected, nil
}
