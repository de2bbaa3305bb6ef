package tools

import (
	"context"

	"github.com/target/edr-bridge/internal/console"
	"github.com/target/edr-bridge/internal/search"
)

// ConsoleAPI is the slice of the console client the tool handlers invoke.
type ConsoleAPI interface {
	ListThreats(ctx context.Context, opts console.ThreatListOptions) ([]console.Threat, error)
	GetThreat(ctx context.Context, id string) (*console.Threat, error)
	MitigateThreat(ctx context.Context, threatID string, action console.MitigationAction) (int, error)
	ListAgents(ctx context.Context, opts console.AgentListOptions) ([]console.Agent, error)
	GetAgent(ctx context.Context, id string) (*console.Agent, error)
	IsolateAgent(ctx context.Context, agentID string) (int, error)
	ReconnectAgent(ctx context.Context, agentID string) (int, error)
}

// SearchRunner drives one search job from submission to a terminal outcome.
type SearchRunner interface {
	Run(ctx context.Context, req search.Request) (*search.Outcome, error)
}
