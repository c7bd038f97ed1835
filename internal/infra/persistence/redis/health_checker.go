package redis

import (
	"context"

	"catalog/internal/domain/service"
	"catalog/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

type healthChecker struct {
	client *goredis.Client
}

// NewHealthChecker pings the Redis session store.
func NewHealthChecker(client *goredis.Client) service.HealthChecker {
	return &healthChecker{client: client}
}

func (c *healthChecker) Name() string {
	return "session_store"
}

func (c *healthChecker) Check(ctx context.Context) error {
	return errors.Wrap(c.client.Ping(ctx).Err(), "failed to ping redis")
}
