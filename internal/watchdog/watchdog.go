// Package watchdog shuts the bridge down when the process that launched it
// exits. Without it, a crashed caller leaves an orphaned service holding live
// console credentials.
package watchdog

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"
)

// ErrParentExited is returned by Run when the launching process has gone away.
var ErrParentExited = errors.New("parent process exited")

// Options holds the dependencies for creating a Watchdog.
type Options struct {
	Interval time.Duration
	Logger   *slog.Logger

	// Getppid is swappable for tests; defaults to os.Getppid.
	Getppid func() int
}

// Watchdog polls the parent process id and reports when it changes.
type Watchdog struct {
	interval time.Duration
	logger   *slog.Logger
	getppid  func() int
}

// New creates a watchdog with the given options.
func New(opts Options) *Watchdog {
	interval := opts.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	getppid := opts.Getppid
	if getppid == nil {
		getppid = os.Getppid
	}
	return &Watchdog{interval: interval, logger: logger, getppid: getppid}
}

// Run polls until the context is cancelled or the parent exits. On orphaning
// the parent pid is reassigned to the init process, so a change away from the
// starting pid means the launcher is gone.
func (w *Watchdog) Run(ctx context.Context) error {
	initial := w.getppid()
	if initial <= 1 {
		// Already reparented (or launched by init); nothing to watch.
		w.logger.InfoContext(ctx, "watchdog disabled, no parent to watch", slog.Int("ppid", initial))
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if current := w.getppid(); current != initial {
				w.logger.InfoContext(ctx, "parent process exited, shutting down",
					slog.Int("initial_ppid", initial),
					slog.Int("current_ppid", current),
				)
				return ErrParentExited
			}
		}
	}
}
