//go:build integration

package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"petid/internal/ports/entitlements"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestPlanCache_Redis(t *testing.T) {
	ctx := context.Background()
	client, err := Open(ctx, startRedis(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := NewPlanCache(client)

	_, ok, err := c.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "ana@example.com", entitlements.PlanPremium, time.Minute))
	plan, ok, err := c.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entitlements.PlanPremium, plan)

	ttl, err := client.TTL(ctx, keyPrefix+"ana@example.com").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx, "ana@example.com"))
	_, ok, err = c.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
