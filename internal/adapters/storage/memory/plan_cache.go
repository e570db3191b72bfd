package memory

import (
	"context"
	"sync"
	"time"

	"petid/internal/ports/entitlements"
)

type planEntry struct {
	plan      entitlements.Plan
	expiresAt time.Time
}

// PlanCache in-memory con TTL. Se usa cuando no hay REDIS_URL.
type PlanCache struct {
	mu    sync.RWMutex
	items map[string]planEntry
	now   func() time.Time
}

func NewPlanCache() *PlanCache {
	return &PlanCache{
		items: make(map[string]planEntry),
		now:   time.Now,
	}
}

func (c *PlanCache) Get(_ context.Context, key string) (entitlements.Plan, bool, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// puede haber sido renovada entre el RUnlock y el Lock
		if cur, ok := c.items[key]; ok && !c.now().Before(cur.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return "", false, nil
	}
	return e.plan, true, nil
}

func (c *PlanCache) Set(_ context.Context, key string, plan entitlements.Plan, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = planEntry{plan: plan, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *PlanCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

var _ entitlements.PlanCache = (*PlanCache)(nil)
