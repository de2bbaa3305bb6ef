package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/target/edr-bridge/config"
	"github.com/target/edr-bridge/internal/watchdog"
)

// Run builds the service graph and runs the HTTP server until a shutdown
// signal, a fatal server error, or (when enabled) the parent-process watchdog
// fires.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}
	if cfg.HTTP.APIToken == "" {
		logger.WarnContext(ctx, "BRIDGE_API_TOKEN is empty, the tool API is unauthenticated")
	}

	services, err := NewServices(&ServiceDeps{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := services.Metrics.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close metrics failed", "error", cerr)
		}
	}()

	server := NewHTTPServer(&HTTPServerConfig{
		Config:   cfg,
		Services: services,
		Logger:   logger,
	})

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(signalCtx)

	group.Go(func() error {
		logger.InfoContext(groupCtx, "starting HTTP server", "addr", server.Addr)
		if serr := server.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			return serr
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		return ShutdownHTTPServer(groupCtx, server, logger)
	})

	if cfg.Watchdog.Enabled {
		dog := watchdog.New(watchdog.Options{
			Interval: cfg.Watchdog.Interval,
			Logger:   logger,
		})
		group.Go(func() error {
			return dog.Run(groupCtx)
		})
	}

	err = group.Wait()
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, watchdog.ErrParentExited):
		logger.InfoContext(ctx, "shutdown complete")
		return nil
	default:
		return err
	}
}
