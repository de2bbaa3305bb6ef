package format

import (
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/target/edr-bridge/internal/console"
)

// ValidateProjection checks a JMESPath fields expression without running it.
// An empty expression is valid and means "no projection".
func ValidateProjection(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return fmt.Errorf("invalid fields expression: %w", err)
	}
	return nil
}

// ProjectEvents applies a JMESPath expression to each event and renders the
// extracted values as one compact JSON document per line. Events are passed
// through a JSON round-trip so the expression sees the wire field names.
func ProjectEvents(events []console.Event, expr string) (string, error) {
	compiled, err := jmespath.Compile(expr)
	if err != nil {
		return "", fmt.Errorf("invalid fields expression: %w", err)
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		var generic any
		raw, err := json.Marshal(e)
		if err != nil {
			return "", fmt.Errorf("encode event %s: %w", e.ID, err)
		}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return "", fmt.Errorf("decode event %s: %w", e.ID, err)
		}

		projected, err := compiled.Search(generic)
		if err != nil {
			return "", fmt.Errorf("apply fields expression: %w", err)
		}
		encoded, err := json.Marshal(projected)
		if err != nil {
			return "", fmt.Errorf("encode projected event: %w", err)
		}
		lines = append(lines, string(encoded))
	}
	return strings.Join(lines, "\n"), nil
}
