package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/target/edr-bridge/internal/console"
	apperrors "github.com/target/edr-bridge/internal/errors"
	"github.com/target/edr-bridge/internal/format"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

func (r *Registry) registerThreatTools() {
	r.register(&Tool{
		Name:        "list_threats",
		Description: "List threats reported by the console, newest first, with optional filters.",
		Schema: objectSchema(map[string]any{
			"limit":           intProp("Maximum number of threats to return (default 10, max 100)."),
			"query":           stringProp("Free-text filter applied by the console."),
			"classifications": stringListProp("Restrict to these threat classifications."),
			"resolved":        boolProp("Restrict to resolved (true) or unresolved (false) threats."),
			"siteIds":         stringListProp("Restrict to these site ids."),
		}),
		run: r.listThreats,
	})
	r.register(&Tool{
		Name:        "get_threat",
		Description: "Fetch the full detail of one threat by id.",
		Schema: objectSchema(map[string]any{
			"threatId": stringProp("The console id of the threat."),
		}, "threatId"),
		run: r.getThreat,
	})
	r.register(&Tool{
		Name:        "mitigate_threat",
		Description: "Apply a mitigation action (kill, quarantine, remediate, rollback-remediation) to one threat.",
		Schema: objectSchema(map[string]any{
			"threatId": stringProp("The console id of the threat."),
			"action":   stringProp("One of: kill, quarantine, remediate, rollback-remediation."),
		}, "threatId", "action"),
		run: r.mitigateThreat,
	})
}

type listThreatsArgs struct {
	Limit           int      `json:"limit"`
	Query           string   `json:"query"`
	Classifications []string `json:"classifications"`
	Resolved        *bool    `json:"resolved"`
	SiteIDs         []string `json:"siteIds"`
}

func (r *Registry) listThreats(ctx context.Context, raw json.RawMessage) (string, error) {
	var args listThreatsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	threats, err := r.console.ListThreats(ctx, console.ThreatListOptions{
		Limit:           clampLimit(args.Limit, defaultListLimit, maxListLimit),
		Query:           args.Query,
		Classifications: args.Classifications,
		Resolved:        args.Resolved,
		SiteIDs:         args.SiteIDs,
	})
	if err != nil {
		return "", consoleError(err)
	}
	return format.ThreatList(threats, r.now()), nil
}

type getThreatArgs struct {
	ThreatID string `json:"threatId"`
}

func (r *Registry) getThreat(ctx context.Context, raw json.RawMessage) (string, error) {
	var args getThreatArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if strings.TrimSpace(args.ThreatID) == "" {
		return "", apperrors.Validation("threatId is required")
	}

	threat, err := r.console.GetThreat(ctx, args.ThreatID)
	if err != nil {
		return "", consoleError(err)
	}
	return format.Threat(*threat, r.now()), nil
}

type mitigateThreatArgs struct {
	ThreatID string `json:"threatId"`
	Action   string `json:"action"`
}

func (r *Registry) mitigateThreat(ctx context.Context, raw json.RawMessage) (string, error) {
	var args mitigateThreatArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if strings.TrimSpace(args.ThreatID) == "" {
		return "", apperrors.Validation("threatId is required")
	}
	action := console.MitigationAction(strings.ToLower(strings.TrimSpace(args.Action)))
	if !action.Valid() {
		return "", apperrors.Validationf(
			"action %q is not one of kill, quarantine, remediate, rollback-remediation", args.Action)
	}

	affected, err := r.console.MitigateThreat(ctx, args.ThreatID, action)
	if err != nil {
		return "", consoleError(err)
	}
	if affected == 0 {
		return fmt.Sprintf("The console accepted the %s action but reported no threats affected.", action), nil
	}
	return fmt.Sprintf("Applied %s to threat %s (%d affected).", action, args.ThreatID, affected), nil
}
