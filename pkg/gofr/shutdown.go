package gofr

import (
	"context"
	"errors"
	"time"

	"gofr.dev/filterable/pkg/gofr/config"
)

const defaultGracePeriod = 30 * time.Second

// ShutdownWithContext waits for shutdownFunc until ctx is done. When ctx ends first, forceCloseFunc
// (if any) is called and its error joined to the one of ctx.
func ShutdownWithContext(ctx context.Context, shutdownFunc func(ctx context.Context) error, forceCloseFunc func() error) error {
	done := make(chan error, 1)

	go func() {
		done <- shutdownFunc(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if forceCloseFunc == nil {
			return ctx.Err()
		}

		return errors.Join(ctx.Err(), forceCloseFunc())
	}
}

// gracePeriod reads SHUTDOWN_GRACE_PERIOD as a time.Duration. The default is returned along with
// the parse error of an invalid value.
func gracePeriod(cfg config.Config) (time.Duration, error) {
	value := cfg.Get("SHUTDOWN_GRACE_PERIOD")
	if value == "" {
		return defaultGracePeriod, nil
	}

	period, err := time.ParseDuration(value)
	if err != nil {
		return defaultGracePeriod, err
	}

	return period, nil
}
