package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"dartshop/internal/notify"
	"dartshop/internal/pkg/config"
	"dartshop/internal/usecase/commands"

	"go.uber.org/fx"
)

// WorkersModule runs the background loops: the expiry sweeper and the
// notification relay. Both stop with the app via context cancellation.
var WorkersModule = fx.Module("workers",
	fx.Invoke(
		startSweeper,
		startRelay,
	),
)

func startSweeper(lc fx.Lifecycle, cfg config.Config, sweeper commands.SweeperCommands) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go runSweeper(ctx, sweeper, cfg.Hold.SweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func runSweeper(ctx context.Context, sweeper commands.SweeperCommands, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := sweeper.SweepExpired(ctx); err != nil {
				slog.Error("expiry sweep failed", "error", err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}

func startRelay(lc fx.Lifecycle, relay *notify.Relay) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go relay.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
