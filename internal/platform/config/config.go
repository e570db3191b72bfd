package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"petid/internal/platform/logger"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

type Asaas struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Configured: sin API key el checkout responde 500 y el resolver trata a todos como free.
func (a Asaas) Configured() bool { return a.APIKey != "" }

type Plan struct {
	Price float64
	Cycle string
}

type Config struct {
	Port string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	Asaas Asaas
	Plan  Plan

	SessionSecret string

	RedisURL     string
	PlanCacheTTL time.Duration

	PremiumForAll    bool
	RevealPolicyFile string
}

// Load lee la configuración del entorno. Todos los errores se devuelven juntos.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	var errs []error
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:      get("PORT", "8080"),
		LogLevel:  logger.ParseLevel(getenv("LOG_LEVEL")),
		LogFormat: logger.ParseFormat(getenv("LOG_FORMAT")),
		AppName:   get("APP_NAME", "petid"),
		Asaas: Asaas{
			APIKey:  get("ASAAS_API_KEY", ""),
			BaseURL: get("ASAAS_BASE_URL", "https://sandbox.asaas.com/api/v3"),
		},
		SessionSecret:    get("SESSION_JWT_SECRET", ""),
		RedisURL:         get("REDIS_URL", ""),
		RevealPolicyFile: get("REVEAL_POLICY_FILE", ""),
	}

	if p, err := strconv.Atoi(cfg.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, &ValidationError{Field: "PORT", Message: "must be a port number"})
	}

	var err error
	if cfg.Asaas.Timeout, err = time.ParseDuration(get("ASAAS_TIMEOUT", "10s")); err != nil || cfg.Asaas.Timeout <= 0 {
		errs = append(errs, &ValidationError{Field: "ASAAS_TIMEOUT", Message: "must be a positive duration"})
	}
	if cfg.PlanCacheTTL, err = time.ParseDuration(get("PLAN_CACHE_TTL", "5m")); err != nil || cfg.PlanCacheTTL <= 0 {
		errs = append(errs, &ValidationError{Field: "PLAN_CACHE_TTL", Message: "must be a positive duration"})
	}

	price := strings.ReplaceAll(get("PLAN_PRICE", "39.90"), ",", ".")
	if cfg.Plan.Price, err = strconv.ParseFloat(price, 64); err != nil || cfg.Plan.Price <= 0 {
		errs = append(errs, &ValidationError{Field: "PLAN_PRICE", Message: "must be a positive number"})
	}

	cfg.Plan.Cycle = strings.ToUpper(get("PLAN_CYCLE", "MONTHLY"))
	switch cfg.Plan.Cycle {
	case "WEEKLY", "MONTHLY", "YEARLY":
	default:
		errs = append(errs, &ValidationError{Field: "PLAN_CYCLE", Message: "must be WEEKLY, MONTHLY or YEARLY"})
	}

	if v := get("PREMIUM_FOR_ALL", ""); v != "" {
		if cfg.PremiumForAll, err = strconv.ParseBool(v); err != nil {
			errs = append(errs, &ValidationError{Field: "PREMIUM_FOR_ALL", Message: "must be a boolean"})
		}
	}

	return cfg, errors.Join(errs...)
}
