package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/edr-bridge/internal/console"
	apperrors "github.com/target/edr-bridge/internal/errors"
)

func invoke(t *testing.T, registry *Registry, name, args string) (string, error) {
	t.Helper()
	tool, ok := registry.Get(name)
	require.True(t, ok, name)
	return tool.Invoke(context.Background(), json.RawMessage(args))
}

func TestListThreatsAppliesFiltersAndDefaultLimit(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	resolved := false
	consoleMock.EXPECT().
		ListThreats(gomock.Any(), console.ThreatListOptions{
			Limit:           defaultListLimit,
			Query:           "evil",
			Classifications: []string{"Malware"},
			Resolved:        &resolved,
		}).
		Return([]console.Threat{{ID: "t-1", Name: "evil.exe"}}, nil)

	out, err := invoke(t, registry, "list_threats",
		`{"query":"evil","classifications":["Malware"],"resolved":false}`)
	require.NoError(t, err)
	require.Contains(t, out, "t-1")
	require.Contains(t, out, "evil.exe")
}

func TestListThreatsEmpty(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	consoleMock.EXPECT().
		ListThreats(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	out, err := invoke(t, registry, "list_threats", `{}`)
	require.NoError(t, err)
	require.Equal(t, "No threats matched the given filters.", out)
}

func TestGetThreatRequiresID(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := invoke(t, registry, "get_threat", `{"threatId":"  "}`)
	require.Error(t, err)
	require.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
}

func TestGetThreatMapsNotFound(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	consoleMock.EXPECT().
		GetThreat(gomock.Any(), "t-404").
		Return(nil, console.ErrNotFound)

	_, err := invoke(t, registry, "get_threat", `{"threatId":"t-404"}`)
	require.Error(t, err)
	require.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func TestMitigateThreatNormalisesAction(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	consoleMock.EXPECT().
		MitigateThreat(gomock.Any(), "t-1", console.MitigationQuarantine).
		Return(1, nil)

	out, err := invoke(t, registry, "mitigate_threat", `{"threatId":"t-1","action":" Quarantine "}`)
	require.NoError(t, err)
	require.Contains(t, out, "quarantine")
	require.Contains(t, out, "t-1")
}

func TestMitigateThreatRejectsUnknownActionWithoutCall(t *testing.T) {
	// No EXPECT: an invalid action must never reach the console.
	registry, _, _ := newTestRegistry(t)

	_, err := invoke(t, registry, "mitigate_threat", `{"threatId":"t-1","action":"detonate"}`)
	require.Error(t, err)
	require.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
}

func TestMitigateThreatZeroAffected(t *testing.T) {
	registry, consoleMock, _ := newTestRegistry(t)

	consoleMock.EXPECT().
		MitigateThreat(gomock.Any(), "t-1", console.MitigationKill).
		Return(0, nil)

	out, err := invoke(t, registry, "mitigate_threat", `{"threatId":"t-1","action":"kill"}`)
	require.NoError(t, err)
	require.Contains(t, out, "no threats affected")
}
