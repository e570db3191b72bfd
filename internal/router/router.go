package router

import (
	"fmt"
	"net/http"

	_ "petid/docs"
	"petid/internal/adapters/storage/memory"
	"petid/internal/domain/breeds"
	"petid/internal/domain/checkout"
	"petid/internal/domain/onboarding"
	"petid/internal/domain/recommendations"
	"petid/internal/domain/reveal"
	"petid/internal/middleware"
	"petid/internal/platform/logger"
	"petid/internal/ports/auth"
	"petid/internal/ports/entitlements"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Plans nil => todos free. PlanCache se invalida tras cada checkout.
	Plans     entitlements.Resolver
	PlanCache entitlements.PlanCache

	// Billing nil => checkout responde 500 (no configurado).
	Billing checkout.Gateway
	Plan    checkout.Plan

	// RevealRules sobreescribe las reglas por sección.
	RevealRules map[reveal.Section]string

	// Catalog nil => catálogo embebido.
	Catalog *breeds.Catalog
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	catalog := opts.Catalog
	if catalog == nil {
		c, err := breeds.Default()
		if err != nil {
			return nil, fmt.Errorf("load breed catalog: %w", err)
		}
		catalog = c
	}

	policy, err := reveal.NewPolicy(opts.RevealRules)
	if err != nil {
		return nil, fmt.Errorf("compile reveal policy: %w", err)
	}

	planCache := opts.PlanCache
	if planCache == nil {
		planCache = memory.NewPlanCache()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	gate := reveal.NewGate(policy, opts.Plans, log.With(map[string]any{"component": "reveal"}))
	presenter := recommendations.NewPresenter(catalog, gate)
	onboardingSvc := onboarding.NewService()
	checkoutSvc := checkout.NewService(opts.Billing, planCache, opts.Plan, log.With(map[string]any{"component": "checkout"}))

	// Rutas por módulo
	recommendations.RegisterRoutes(r, presenter)
	breeds.RegisterRoutes(r, catalog, gate)
	onboarding.RegisterRoutes(r, onboardingSvc, presenter)
	checkout.RegisterRoutes(r, checkoutSvc)

	return r, nil
}
