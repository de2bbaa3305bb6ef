// Package format renders console resources as compact plain text for an
// automated caller. Fields are truncated defensively so one oversized value
// cannot blow up a tool response.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/target/edr-bridge/internal/console"
)

// maxFieldLen caps any single rendered field value.
const maxFieldLen = 200

// Truncate shortens s to at most n runes, appending "..." when it cut
// anything off.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// TimeAgo renders t relative to now ("5m ago", "3h ago", "2d ago").
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Threat renders one threat as a multi-line block.
func Threat(t console.Threat, now time.Time) string {
	var b strings.Builder
	writeField(&b, "Threat", t.ID)
	writeField(&b, "Name", t.Name)
	writeField(&b, "Classification", t.Classification)
	writeField(&b, "Confidence", t.ConfidenceLevel)
	writeField(&b, "File", t.FilePath)
	writeField(&b, "SHA256", t.SHA256)
	writeField(&b, "Agent", joinNonEmpty(t.AgentName, t.AgentID))
	writeField(&b, "Mitigation", t.MitigationStatus)
	writeField(&b, "Resolved", fmt.Sprintf("%t", t.Resolved))
	writeField(&b, "Detected", when(t.CreatedAt, now))
	return strings.TrimRight(b.String(), "\n")
}

// ThreatList renders threats separated by blank lines, or a placeholder when
// empty.
func ThreatList(threats []console.Threat, now time.Time) string {
	if len(threats) == 0 {
		return "No threats matched the given filters."
	}
	blocks := make([]string, 0, len(threats))
	for _, t := range threats {
		blocks = append(blocks, Threat(t, now))
	}
	return strings.Join(blocks, "\n\n")
}

// Agent renders one agent as a multi-line block.
func Agent(a console.Agent, now time.Time) string {
	var b strings.Builder
	writeField(&b, "Agent", a.ID)
	writeField(&b, "Computer", a.ComputerName)
	writeField(&b, "OS", a.OSName)
	writeField(&b, "Version", a.AgentVersion)
	writeField(&b, "Domain", a.Domain)
	writeField(&b, "External IP", a.ExternalIP)
	writeField(&b, "Active", fmt.Sprintf("%t", a.IsActive))
	writeField(&b, "Infected", fmt.Sprintf("%t", a.Infected))
	writeField(&b, "Network", a.NetworkStatus)
	writeField(&b, "Last active", when(a.LastActiveAt, now))
	return strings.TrimRight(b.String(), "\n")
}

// AgentList renders agents separated by blank lines, or a placeholder when
// empty.
func AgentList(agents []console.Agent, now time.Time) string {
	if len(agents) == 0 {
		return "No agents matched the given filters."
	}
	blocks := make([]string, 0, len(agents))
	for _, a := range agents {
		blocks = append(blocks, Agent(a, now))
	}
	return strings.Join(blocks, "\n\n")
}

// Event renders one telemetry event on a single line.
func Event(e console.Event, now time.Time) string {
	parts := []string{when(e.CreatedAt, now)}
	if e.EventType != "" {
		parts = append(parts, Truncate(e.EventType, maxFieldLen))
	}
	if e.EndpointName != "" {
		parts = append(parts, "endpoint="+Truncate(e.EndpointName, maxFieldLen))
	}
	if e.ProcessName != "" {
		parts = append(parts, "process="+Truncate(e.ProcessName, maxFieldLen))
	}
	if e.User != "" {
		parts = append(parts, "user="+Truncate(e.User, maxFieldLen))
	}
	if e.SHA256 != "" {
		parts = append(parts, "sha256="+e.SHA256)
	}
	if e.Path != "" {
		parts = append(parts, "path="+Truncate(e.Path, maxFieldLen))
	}
	return strings.Join(parts, " ")
}

// Events renders events one per line.
func Events(events []console.Event, now time.Time) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, Event(e, now))
	}
	return strings.Join(lines, "\n")
}

func writeField(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(Truncate(value, maxFieldLen))
	b.WriteByte('\n')
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " / ")
}

func when(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339) + " (" + TimeAgo(t, now) + ")"
}
