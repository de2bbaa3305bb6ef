package tools

import (
	"regexp"
	"strings"

	apperrors "github.com/target/edr-bridge/internal/errors"
)

// hashLiteralRE matches hash comparisons in a search query, e.g.
// `SHA256 = "abc..."`. The console only reports malformed literals as a
// failed job after submission, so they are rejected here instead, before any
// job is created.
var hashLiteralRE = regexp.MustCompile(`(?i)\b(sha256|sha1|md5)\s*=\s*"([^"]*)"`)

var hexRE = regexp.MustCompile(`^[0-9a-fA-F]+$`)

var hashDigestLengths = map[string]int{
	"sha256": 64,
	"sha1":   40,
	"md5":    32,
}

// validateHashLiterals rejects hash comparisons whose literal cannot be a
// digest of the named algorithm.
func validateHashLiterals(query string) error {
	for _, match := range hashLiteralRE.FindAllStringSubmatch(query, -1) {
		algo := strings.ToLower(match[1])
		literal := match[2]
		want := hashDigestLengths[algo]
		if len(literal) != want || !hexRE.MatchString(literal) {
			return apperrors.Validationf(
				"%s literal %q must be exactly %d hex characters", strings.ToUpper(algo), literal, want)
		}
	}
	return nil
}
