package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"petid/internal/ports/entitlements"
)

const keyPrefix = "petid:plan:"

// Open parsea REDIS_URL y hace ping antes de devolver el cliente.
func Open(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

// PlanCache guarda el plan resuelto con SET EX, así varias réplicas comparten la caché.
type PlanCache struct {
	client goredis.Cmdable
}

func NewPlanCache(client goredis.Cmdable) *PlanCache {
	return &PlanCache{client: client}
}

func (c *PlanCache) Get(ctx context.Context, key string) (entitlements.Plan, bool, error) {
	v, err := c.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entitlements.Plan(v), true, nil
}

func (c *PlanCache) Set(ctx context.Context, key string, plan entitlements.Plan, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, keyPrefix+key, string(plan), ttl).Err()
}

func (c *PlanCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, keyPrefix+key).Err()
}

var _ entitlements.PlanCache = (*PlanCache)(nil)
