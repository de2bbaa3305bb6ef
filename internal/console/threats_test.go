package console

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListThreatsBuildsQueryString(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[{"id":"t-1","threatName":"evil.exe"}]}`))
	}))

	resolved := false
	threats, err := client.ListThreats(context.Background(), ThreatListOptions{
		Limit:           25,
		Query:           "evil",
		Classifications: []string{"Malware", "PUA"},
		Resolved:        &resolved,
		SiteIDs:         []string{"s-1", " ", "s-2"},
	})
	require.NoError(t, err)
	require.Len(t, threats, 1)
	require.Equal(t, "t-1", threats[0].ID)
	require.Equal(t, "evil.exe", threats[0].Name)

	require.Equal(t, []string{"25"}, gotQuery["limit"])
	require.Equal(t, []string{"evil"}, gotQuery["query"])
	require.Equal(t, []string{"Malware,PUA"}, gotQuery["classifications"])
	require.Equal(t, []string{"false"}, gotQuery["resolved"])
	require.Equal(t, []string{"s-1,s-2"}, gotQuery["siteIds"])
}

func TestGetThreatNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))

	_, err := client.GetThreat(context.Background(), "t-404")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetThreatUsesIDFilter(t *testing.T) {
	var gotIDs []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query()["ids"]
		w.Write([]byte(`{"data":[{"id":"t-1"}]}`))
	}))

	threat, err := client.GetThreat(context.Background(), "t-1")
	require.NoError(t, err)
	require.Equal(t, "t-1", threat.ID)
	require.Equal(t, []string{"t-1"}, gotIDs)
}

func TestMitigateThreatPostsFilterBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"data":{"affected":1}}`))
	}))

	affected, err := client.MitigateThreat(context.Background(), "t-1", MitigationQuarantine)
	require.NoError(t, err)
	require.Equal(t, 1, affected)
	require.Equal(t, "/api/v2/threats/mitigate/quarantine", gotPath)
	require.Equal(t,
		map[string]any{"filter": map[string]any{"ids": []any{"t-1"}}},
		gotBody)
}

func TestMitigateThreatRejectsUnknownAction(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.MitigateThreat(context.Background(), "t-1", MitigationAction("detonate"))
	require.Error(t, err)
}

func TestMitigationActionValid(t *testing.T) {
	for _, action := range []MitigationAction{
		MitigationKill, MitigationQuarantine, MitigationRemediate, MitigationRollbackRemediation,
	} {
		require.True(t, action.Valid(), string(action))
	}
	require.False(t, MitigationAction("KILL").Valid())
	require.False(t, MitigationAction("").Valid())
}
