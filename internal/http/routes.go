// Package httpx wires the inbound HTTP surface of the bridge: the tool
// catalog, tool invocation, and health. Every /api route sits behind the
// bearer-token middleware.
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/edr-bridge/internal/tools"
)

// RouterOptions groups dependencies for NewRouter.
type RouterOptions struct {
	Registry *tools.Registry
	Logger   *slog.Logger
	APIToken string
}

// NewRouter builds the HTTP handler with all routes and middleware applied.
func NewRouter(opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &toolHandlers{registry: opts.Registry, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	requireToken := RequireToken(opts.APIToken)
	mux.Handle("GET /api/v1/tools", requireToken(http.HandlerFunc(h.listTools)))
	mux.Handle("POST /api/v1/tools/{name}", requireToken(http.HandlerFunc(h.invokeTool)))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = RequestID()(handler)
	handler = Recover(logger)(handler)
	return handler
}
