// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultShutdownGrace = 10 * time.Second

// App runs a long-lived process and coordinates its graceful shutdown.
// Cleanup callbacks registered with OnShutdown run in reverse order under a
// bounded grace period once an interrupt or termination signal arrives.
type App struct {
	grace time.Duration

	mu    sync.Mutex
	hooks []func(ctx context.Context) error
}

// New creates an App. grace bounds how long shutdown callbacks may take in
// total; zero picks a default.
func New(grace time.Duration) *App {
	if grace <= 0 {
		grace = defaultShutdownGrace
	}
	return &App{grace: grace}
}

// OnShutdown registers a cleanup callback. Callbacks run in reverse
// registration order, so a dependency registered before its dependents is
// torn down last. Safe for concurrent use, including from inside Run.
func (a *App) OnShutdown(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes run with a context that is cancelled on SIGINT or SIGTERM.
// When the signal arrives, the registered cleanup callbacks run and their
// joined error is returned. If run fails first, its error is returned and
// cleanup is skipped because run owns whatever it had already started.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.grace)
		defer shutdownCancel()
		return a.shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
