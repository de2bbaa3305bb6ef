package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/target/edr-bridge/config"
	"github.com/target/edr-bridge/internal/console"
	"github.com/target/edr-bridge/internal/observability/statsd"
	"github.com/target/edr-bridge/internal/search"
	"github.com/target/edr-bridge/internal/tools"
)

// ServiceDeps holds the inputs for building the service graph.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// ServiceContainer holds the wired service graph.
type ServiceContainer struct {
	Console  *console.Client
	Search   *search.Runner
	Registry *tools.Registry
	Metrics  *statsd.Client
}

// NewServices wires the console client, the search runner, and the tool
// registry from configuration.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  "edr_bridge",
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	consoleClient, err := console.NewClient(console.Config{
		BaseURL:        cfg.Console.BaseURL,
		APIToken:       cfg.Console.APIToken,
		RequestTimeout: cfg.Console.RequestTimeout,
		Logger:         logger,
		Metrics:        metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("init console client: %w", err)
	}

	runner, err := search.NewRunner(search.RunnerOptions{
		API: consoleClient,
		Config: search.Config{
			Create: search.RetryPolicy{
				MaxAttempts: cfg.Search.CreateAttempts,
				Delay:       cfg.Search.CreateDelay,
			},
			Fetch: search.RetryPolicy{
				MaxAttempts: cfg.Search.FetchAttempts,
				Delay:       cfg.Search.FetchDelay,
			},
			PollInterval: cfg.Search.PollInterval,
			MaxPolls:     cfg.Search.MaxPolls,
		},
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("init search runner: %w", err)
	}

	registry, err := tools.NewRegistry(tools.RegistryOptions{
		Console: consoleClient,
		Search:  runner,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init tool registry: %w", err)
	}

	return &ServiceContainer{
		Console:  consoleClient,
		Search:   runner,
		Registry: registry,
		Metrics:  metrics,
	}, nil
}
