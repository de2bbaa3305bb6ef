// Package tools defines the security-operations tools the bridge exposes to
// an automated caller and dispatches invocations to the console client. All
// caller input validation happens here, before any console call is made;
// console failures are translated into caller-safe application errors.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/target/edr-bridge/internal/console"
	apperrors "github.com/target/edr-bridge/internal/errors"
)

// Handler executes one tool invocation and returns the rendered text result.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// Tool is one named operation with a machine-readable input schema.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"inputSchema"`

	run Handler
}

// Invoke runs the tool handler.
func (t *Tool) Invoke(ctx context.Context, args json.RawMessage) (string, error) {
	return t.run(ctx, args)
}

// RegistryOptions groups dependencies for NewRegistry.
type RegistryOptions struct {
	Console ConsoleAPI
	Search  SearchRunner
	Logger  *slog.Logger
}

// Registry holds the tool set in a stable registration order.
type Registry struct {
	console ConsoleAPI
	search  SearchRunner
	logger  *slog.Logger
	now     func() time.Time

	tools map[string]*Tool
	order []string
}

// NewRegistry constructs the full tool set.
func NewRegistry(opts RegistryOptions) (*Registry, error) {
	if opts.Console == nil {
		return nil, errors.New("console API is required")
	}
	if opts.Search == nil {
		return nil, errors.New("search runner is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		console: opts.Console,
		search:  opts.Search,
		logger:  logger,
		now:     time.Now,
		tools:   make(map[string]*Tool),
	}
	r.registerThreatTools()
	r.registerAgentTools()
	r.registerSearchTools()
	return r, nil
}

// Get returns the named tool.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns the tools in registration order.
func (r *Registry) List() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

func (r *Registry) register(t *Tool) {
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
}

// decodeArgs strictly decodes tool arguments; unknown fields are rejected so
// a misspelled filter fails loudly instead of being silently ignored.
func decodeArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.Validationf("invalid arguments: %v", err)
	}
	return nil
}

// clampLimit normalises a caller-supplied page size.
func clampLimit(limit, fallback, ceiling int) int {
	switch {
	case limit <= 0:
		return fallback
	case limit > ceiling:
		return ceiling
	default:
		return limit
	}
}

// consoleError maps console client failures onto caller-safe application
// errors. Transport detail stays behind; only the status category survives.
func consoleError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var transportErr *console.TransportError
	switch {
	case errors.Is(err, console.ErrRequestTimeout):
		return apperrors.Unavailable("console did not answer within the request bound", err)
	case errors.As(err, &transportErr):
		return apperrors.Unavailable("console is unreachable", err)
	case errors.Is(err, console.ErrNotFound):
		return apperrors.NotFound("no matching resource in the console")
	}

	var apiErr *console.APIError
	if errors.As(err, &apiErr) {
		return apperrors.Upstream(
			"console rejected the request (status "+strconv.Itoa(apiErr.StatusCode)+")", err)
	}
	return apperrors.Internal("tool invocation failed", err)
}
