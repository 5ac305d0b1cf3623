package bootstrap

import (
	"context"

	"dartshop/internal/notify"
	"dartshop/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewPublisher,
		notify.NewRelay,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := notify.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewPublisher(client *redis.Client, cfg config.Config) *notify.Publisher {
	return notify.NewPublisher(client, cfg.Redis)
}
