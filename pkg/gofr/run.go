package gofr

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Run starts the HTTP and metrics servers and blocks until they are shut down on SIGINT or SIGTERM.
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		timeout, err := gracePeriod(a.Config)
		if err != nil {
			a.Logger().Errorf("invalid SHUTDOWN_GRACE_PERIOD, using %v: %v", timeout, err)
		}

		shutdownCtx, done := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer done()

		if err := a.Shutdown(shutdownCtx); err != nil {
			a.Logger().Errorf("error while shutting down: %v", err)
		}
	}()

	wg := sync.WaitGroup{}

	wg.Add(2)

	go func() {
		defer wg.Done()
		a.metricServer.Run(a.Logger())
	}()

	go func() {
		defer wg.Done()
		a.httpServer.Run(a.Logger())
	}()

	wg.Wait()
}
