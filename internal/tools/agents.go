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

func (r *Registry) registerAgentTools() {
	r.register(&Tool{
		Name:        "list_agents",
		Description: "List managed endpoints known to the console, with optional filters.",
		Schema: objectSchema(map[string]any{
			"limit":    intProp("Maximum number of agents to return (default 10, max 100)."),
			"query":    stringProp("Free-text filter (computer name, IP, etc.)."),
			"isActive": boolProp("Restrict to agents currently online (true) or offline (false)."),
			"infected": boolProp("Restrict to agents with (true) or without (false) active threats."),
			"siteIds":  stringListProp("Restrict to these site ids."),
		}),
		run: r.listAgents,
	})
	r.register(&Tool{
		Name:        "get_agent",
		Description: "Fetch the full detail of one agent by id.",
		Schema: objectSchema(map[string]any{
			"agentId": stringProp("The console id of the agent."),
		}, "agentId"),
		run: r.getAgent,
	})
	r.register(&Tool{
		Name:        "isolate_agent",
		Description: "Disconnect one agent from the network, keeping only its console management channel.",
		Schema: objectSchema(map[string]any{
			"agentId": stringProp("The console id of the agent."),
		}, "agentId"),
		run: r.isolateAgent,
	})
	r.register(&Tool{
		Name:        "reconnect_agent",
		Description: "Lift a previous network isolation for one agent.",
		Schema: objectSchema(map[string]any{
			"agentId": stringProp("The console id of the agent."),
		}, "agentId"),
		run: r.reconnectAgent,
	})
}

type listAgentsArgs struct {
	Limit    int      `json:"limit"`
	Query    string   `json:"query"`
	IsActive *bool    `json:"isActive"`
	Infected *bool    `json:"infected"`
	SiteIDs  []string `json:"siteIds"`
}

func (r *Registry) listAgents(ctx context.Context, raw json.RawMessage) (string, error) {
	var args listAgentsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	agents, err := r.console.ListAgents(ctx, console.AgentListOptions{
		Limit:    clampLimit(args.Limit, defaultListLimit, maxListLimit),
		Query:    args.Query,
		IsActive: args.IsActive,
		Infected: args.Infected,
		SiteIDs:  args.SiteIDs,
	})
	if err != nil {
		return "", consoleError(err)
	}
	return format.AgentList(agents, r.now()), nil
}

type agentIDArgs struct {
	AgentID string `json:"agentId"`
}

func (a agentIDArgs) validate() error {
	if strings.TrimSpace(a.AgentID) == "" {
		return apperrors.Validation("agentId is required")
	}
	return nil
}

func (r *Registry) getAgent(ctx context.Context, raw json.RawMessage) (string, error) {
	var args agentIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if err := args.validate(); err != nil {
		return "", err
	}

	agent, err := r.console.GetAgent(ctx, args.AgentID)
	if err != nil {
		return "", consoleError(err)
	}
	return format.Agent(*agent, r.now()), nil
}

func (r *Registry) isolateAgent(ctx context.Context, raw json.RawMessage) (string, error) {
	var args agentIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if err := args.validate(); err != nil {
		return "", err
	}

	affected, err := r.console.IsolateAgent(ctx, args.AgentID)
	if err != nil {
		return "", consoleError(err)
	}
	if affected == 0 {
		return "The console accepted the isolation request but reported no agents affected.", nil
	}
	return fmt.Sprintf("Agent %s is being isolated from the network (%d affected).", args.AgentID, affected), nil
}

func (r *Registry) reconnectAgent(ctx context.Context, raw json.RawMessage) (string, error) {
	var args agentIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if err := args.validate(); err != nil {
		return "", err
	}

	affected, err := r.console.ReconnectAgent(ctx, args.AgentID)
	if err != nil {
		return "", consoleError(err)
	}
	if affected == 0 {
		return "The console accepted the reconnect request but reported no agents affected.", nil
	}
	return fmt.Sprintf("Agent %s is being reconnected to the network (%d affected).", args.AgentID, affected), nil
}
