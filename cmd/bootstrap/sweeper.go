package bootstrap

import (
	"context"
	"log/slog"

	"boilerbites/internal/infra/sweeper"
	"boilerbites/internal/pkg/config"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(
		StartSweeper,
	),
)

// StartSweeper runs the expiration sweeper for the app's lifetime.
func StartSweeper(lc fx.Lifecycle, registry sweeper.Registry, cfg config.Config, logger *slog.Logger) {
	s := sweeper.New(registry, cfg.Store.SweepInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				s.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
