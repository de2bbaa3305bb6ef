package console

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListAgentsBuildsQueryString(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[{"id":"a-1","computerName":"host-1","isActive":true}]}`))
	}))

	active := true
	infected := false
	agents, err := client.ListAgents(context.Background(), AgentListOptions{
		Limit:    5,
		IsActive: &active,
		Infected: &infected,
	})
	require.NoError(t, err)
	require.Len(t, agents, 1)
	require.Equal(t, "host-1", agents[0].ComputerName)
	require.True(t, agents[0].IsActive)

	require.Equal(t, []string{"5"}, gotQuery["limit"])
	require.Equal(t, []string{"true"}, gotQuery["isActive"])
	require.Equal(t, []string{"false"}, gotQuery["infected"])
}

func TestGetAgentNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))

	_, err := client.GetAgent(context.Background(), "a-404")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAgentNetworkActions(t *testing.T) {
	tests := []struct {
		name     string
		invoke   func(c *Client) (int, error)
		wantPath string
	}{
		{
			name:     "isolate",
			invoke:   func(c *Client) (int, error) { return c.IsolateAgent(context.Background(), "a-1") },
			wantPath: "/api/v2/agents/actions/disconnect",
		},
		{
			name:     "reconnect",
			invoke:   func(c *Client) (int, error) { return c.ReconnectAgent(context.Background(), "a-1") },
			wantPath: "/api/v2/agents/actions/connect",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath, gotMethod string
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotMethod = r.Method
				w.Write([]byte(`{"data":{"affected":1}}`))
			}))

			affected, err := tc.invoke(client)
			require.NoError(t, err)
			require.Equal(t, 1, affected)
			require.Equal(t, tc.wantPath, gotPath)
			require.Equal(t, http.MethodPost, gotMethod)
		})
	}
}

func TestAgentActionRequiresID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.IsolateAgent(context.Background(), "  ")
	require.Error(t, err)
}
