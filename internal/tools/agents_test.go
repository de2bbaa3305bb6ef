package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/edr-bridge/internal/console"
	apperrors "github.com/target/edr-bridge/internal/errors"
)

func TestListAgentsAppliesFilters(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	active := true
	consoleMock.EXPECT().
		ListAgents(gomock.Any(), console.AgentListOptions{
			Limit:    25,
			IsActive: &active,
			SiteIDs:  []string{"s-1"},
		}).
		Return([]console.Agent{{ID: "a-1", ComputerName: "host-1"}}, nil)

	out, err := invoke(t, registry, "list_agents", `{"limit":25,"isActive":true,"siteIds":["s-1"]}`)
	require.NoError(t, err)
	require.Contains(t, out, "host-1")
}

func TestGetAgentRequiresID(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := invoke(t, registry, "get_agent", `{}`)
	require.Error(t, err)
	require.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
}

func TestIsolateAgent(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	consoleMock.EXPECT().
		IsolateAgent(gomock.Any(), "a-1").
		Return(1, nil)

	out, err := invoke(t, registry, "isolate_agent", `{"agentId":"a-1"}`)
	require.NoError(t, err)
	require.Contains(t, out, "isolated")
	require.Contains(t, out, "a-1")
}

func TestReconnectAgentZeroAffected(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	consoleMock.EXPECT().
		ReconnectAgent(gomock.Any(), "a-1").
		Return(0, nil)

	out, err := invoke(t, registry, "reconnect_agent", `{"agentId":"a-1"}`)
	require.NoError(t, err)
	require.Contains(t, out, "no agents affected")
}

func TestAgentToolMapsTimeout(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	consoleMock.EXPECT().
		IsolateAgent(gomock.Any(), "a-1").
		Return(0, console.ErrRequestTimeout)

	_, err := invoke(t, registry, "isolate_agent", `{"agentId":"a-1"}`)
	require.Error(t, err)
	require.Equal(t, apperrors.ErrCodeUnavailable, apperrors.CodeOf(err))
}
