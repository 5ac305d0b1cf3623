package notify

import (
	"context"

	"dartshop/internal/pkg/config"
	"dartshop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Publisher fans events out over a redis pub/sub channel. Subscribers are
// external (storefront pages, a Discord bot); delivery past redis is their
// problem.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

func NewPublisher(client *redis.Client, cfg config.RedisConfig) *Publisher {
	return &Publisher{client: client, channel: cfg.Channel}
}

func (p *Publisher) Publish(ctx context.Context, message []byte) error {
	if err := p.client.Publish(ctx, p.channel, message).Err(); err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}
