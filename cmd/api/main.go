package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"petid/internal/adapters/auth/session"
	"petid/internal/adapters/billing/asaas"
	"petid/internal/adapters/entitlements/subscriptions"
	"petid/internal/adapters/storage/memory"
	redisstore "petid/internal/adapters/storage/redis"
	"petid/internal/domain/checkout"
	"petid/internal/domain/reveal"
	"petid/internal/platform/config"
	"petid/internal/platform/logger"
	"petid/internal/ports/auth"
	"petid/internal/ports/entitlements"
	"petid/internal/router"
)

// @title       PetID API
// @version     1.0
// @description Recomendaciones de dieta, vacunas y cuidados para perros, catálogo de razas y checkout premium.
// @BasePath    /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "petid api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, App: cfg.AppName})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Verifier de sesión; sin secreto queda el modo dev con X-Debug-User-ID.
	var verifier auth.AuthVerifier
	if cfg.SessionSecret != "" {
		v, err := session.NewVerifier(cfg.SessionSecret)
		if err != nil {
			return err
		}
		verifier = v
	} else {
		log.Warn("SESSION_JWT_SECRET not set, accepting X-Debug-User-ID headers", nil)
	}

	// Caché de planes: Redis si hay REDIS_URL, si no in-memory.
	var cache entitlements.PlanCache = memory.NewPlanCache()
	if cfg.RedisURL != "" {
		client, err := redisstore.Open(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		cache = redisstore.NewPlanCache(client)
	}

	opts := router.Options{
		Log:          log,
		AuthVerifier: verifier,
		PlanCache:    cache,
		Plan:         checkout.Plan{Price: cfg.Plan.Price, Cycle: checkout.Cycle(cfg.Plan.Cycle)},
	}

	resolverOpts := subscriptions.Options{
		Cache:         cache,
		TTL:           cfg.PlanCacheTTL,
		PremiumForAll: cfg.PremiumForAll,
		Log:           log.With(map[string]any{"component": "plans"}),
	}
	if cfg.Asaas.Configured() {
		client, err := asaas.NewClient(asaas.Config{
			BaseURL: cfg.Asaas.BaseURL,
			APIKey:  cfg.Asaas.APIKey,
			Timeout: cfg.Asaas.Timeout,
		})
		if err != nil {
			return err
		}
		opts.Billing = client
		resolverOpts.Lookup = client
	} else {
		log.Warn("ASAAS_API_KEY not set, checkout disabled", nil)
	}
	if resolverOpts.Lookup != nil || resolverOpts.PremiumForAll {
		opts.Plans = subscriptions.NewResolver(resolverOpts)
	}

	if cfg.RevealPolicyFile != "" {
		f, err := os.Open(cfg.RevealPolicyFile)
		if err != nil {
			return fmt.Errorf("open reveal policy: %w", err)
		}
		rules, err := reveal.LoadRules(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		opts.RevealRules = rules
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
