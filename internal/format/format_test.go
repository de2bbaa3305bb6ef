package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/target/edr-bridge/internal/console"
)

var testNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "abc...", Truncate("abcdef", 3))
	require.Equal(t, "abcdef", Truncate("abcdef", 0))
	// Rune-aware: no mid-character cuts.
	require.Equal(t, "héll...", Truncate("héllo wörld", 4))
}

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "unknown"},
		{"seconds", testNow.Add(-30 * time.Second), "just now"},
		{"minutes", testNow.Add(-5 * time.Minute), "5m ago"},
		{"hours", testNow.Add(-3 * time.Hour), "3h ago"},
		{"days", testNow.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, TimeAgo(tc.t, testNow))
		})
	}
}

func TestThreatRendering(t *testing.T) {
	out := Threat(console.Threat{
		ID:               "t-1",
		Name:             "evil.exe",
		Classification:   "Malware",
		ConfidenceLevel:  "malicious",
		FilePath:         `C:\temp\evil.exe`,
		AgentName:        "host-1",
		AgentID:          "a-1",
		MitigationStatus: "not_mitigated",
		CreatedAt:        testNow.Add(-2 * time.Hour),
	}, testNow)

	require.Contains(t, out, "Threat: t-1")
	require.Contains(t, out, "Name: evil.exe")
	require.Contains(t, out, "Agent: host-1 / a-1")
	require.Contains(t, out, "2h ago")
	// Empty fields are omitted entirely.
	require.NotContains(t, out, "SHA256")
	require.False(t, strings.HasSuffix(out, "\n"))
}

func TestThreatListEmpty(t *testing.T) {
	require.Equal(t, "No threats matched the given filters.", ThreatList(nil, testNow))
}

func TestAgentListSeparatesBlocks(t *testing.T) {
	out := AgentList([]console.Agent{
		{ID: "a-1", ComputerName: "host-1"},
		{ID: "a-2", ComputerName: "host-2"},
	}, testNow)
	require.Contains(t, out, "host-1")
	require.Contains(t, out, "host-2")
	require.Contains(t, out, "\n\n")
}

func TestEventRendering(t *testing.T) {
	out := Event(console.Event{
		EventType:    "Process Creation",
		EndpointName: "host-1",
		ProcessName:  "cmd.exe",
		User:         "corp\\alice",
		CreatedAt:    testNow.Add(-10 * time.Minute),
	}, testNow)

	require.Contains(t, out, "Process Creation")
	require.Contains(t, out, "endpoint=host-1")
	require.Contains(t, out, "process=cmd.exe")
	require.Contains(t, out, "user=corp\\alice")
	require.NotContains(t, out, "sha256=")
}

func TestEventsOnePerLine(t *testing.T) {
	out := Events([]console.Event{
		{EventType: "A", CreatedAt: testNow},
		{EventType: "B", CreatedAt: testNow},
	}, testNow)
	require.Len(t, strings.Split(out, "\n"), 2)
}

func TestFieldTruncation(t *testing.T) {
	long := strings.Repeat("x", 500)
	out := Threat(console.Threat{ID: "t-1", FilePath: long}, testNow)
	require.Contains(t, out, strings.Repeat("x", maxFieldLen)+"...")
	require.NotContains(t, out, strings.Repeat("x", maxFieldLen+1))
}
