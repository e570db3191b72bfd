package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petid/internal/platform/logger"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, logger.Info, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
	assert.Equal(t, "petid", cfg.AppName)
	assert.Equal(t, "https://sandbox.asaas.com/api/v3", cfg.Asaas.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Asaas.Timeout)
	assert.False(t, cfg.Asaas.Configured())
	assert.Equal(t, 39.90, cfg.Plan.Price)
	assert.Equal(t, "MONTHLY", cfg.Plan.Cycle)
	assert.Equal(t, 5*time.Minute, cfg.PlanCacheTTL)
	assert.False(t, cfg.PremiumForAll)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"PORT":            "9090",
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "json",
		"ASAAS_API_KEY":   "key",
		"PLAN_PRICE":      "49,90",
		"PLAN_CYCLE":      "yearly",
		"PREMIUM_FOR_ALL": "true",
		"REDIS_URL":       "redis://localhost:6379/0",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, logger.Debug, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
	assert.True(t, cfg.Asaas.Configured())
	assert.Equal(t, 49.90, cfg.Plan.Price)
	assert.Equal(t, "YEARLY", cfg.Plan.Cycle)
	assert.True(t, cfg.PremiumForAll)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_CollectsAllErrors(t *testing.T) {
	_, err := load(env(map[string]string{
		"PORT":            "http",
		"ASAAS_TIMEOUT":   "soon",
		"PLAN_PRICE":      "-1",
		"PLAN_CYCLE":      "DAILY",
		"PREMIUM_FOR_ALL": "maybe",
	}))
	require.Error(t, err)

	fields := map[string]bool{}
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve *ValidationError
		require.True(t, errors.As(e, &ve))
		fields[ve.Field] = true
	}
	assert.Equal(t, map[string]bool{
		"PORT": true, "ASAAS_TIMEOUT": true, "PLAN_PRICE": true, "PLAN_CYCLE": true, "PREMIUM_FOR_ALL": true,
	}, fields)
}

// El resolver usa su TTL por defecto cuando recibe 0, así que 0 no puede
// significar "sin caché": se rechaza igual que un valor negativo.
func TestLoad_PlanCacheTTLMustBePositive(t *testing.T) {
	for _, v := range []string{"0", "0s", "-1m", "later"} {
		_, err := load(env(map[string]string{"PLAN_CACHE_TTL": v}))
		var ve *ValidationError
		require.ErrorAsf(t, err, &ve, "PLAN_CACHE_TTL=%q", v)
		assert.Equal(t, "PLAN_CACHE_TTL", ve.Field)
	}

	cfg, err := load(env(map[string]string{"PLAN_CACHE_TTL": "30s"}))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.PlanCacheTTL)
}
