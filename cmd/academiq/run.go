package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run drives the fx application: start, wait for a signal or an internal
// shutdown request, then stop with a fresh context so teardown is not cut
// short by the cancelled signal context.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}
