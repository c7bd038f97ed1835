// Package redis keeps login sessions in Redis when config.Session.Store is "redis".
package redis

import (
	"context"
	"log/slog"
	"net"

	"catalog/config"
	"catalog/internal/domain/lifecycle"
	"catalog/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client and ties its lifetime to the fx application.
func NewClient(params Params) (*goredis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis section is not configured")
	}

	cfg := params.Config.Redis
	client := goredis.NewClient(&goredis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", client.Options().Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
