package subscriptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"petid/internal/domain/checkout"
	"petid/internal/platform/logger"
	"petid/internal/ports/auth"
	"petid/internal/ports/entitlements"
)

var ErrNotConfigured = errors.New("subscription lookup not configured")

const DefaultTTL = 5 * time.Minute

// Lookup es la parte del gateway de pagos que necesita el resolver.
type Lookup interface {
	FindCustomerByEmail(ctx context.Context, email string) (checkout.CustomerRecord, bool, error)
	ListActiveSubscriptions(ctx context.Context, customerID string) ([]checkout.Subscription, error)
}

type Options struct {
	Lookup Lookup
	Cache  entitlements.PlanCache // opcional
	TTL    time.Duration

	// PremiumForAll devuelve premium sin consultar upstream (modo dev / demo).
	PremiumForAll bool

	Log logger.Logger
}

// Resolver decide el plan por la existencia de una suscripción ACTIVE del email.
type Resolver struct {
	lookup   Lookup
	cache    entitlements.PlanCache
	ttl      time.Duration
	allowAll bool
	log      logger.Logger
}

func NewResolver(opts Options) *Resolver {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{
		lookup:   opts.Lookup,
		cache:    opts.Cache,
		ttl:      ttl,
		allowAll: opts.PremiumForAll,
		log:      log,
	}
}

func (r *Resolver) PlanFor(ctx context.Context, claims auth.Claims) (entitlements.Plan, error) {
	if r.allowAll {
		return entitlements.PlanPremium, nil
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return entitlements.PlanFree, nil
	}

	if r.cache != nil {
		plan, ok, err := r.cache.Get(ctx, email)
		if err != nil {
			r.log.Warn("plan cache get failed", map[string]any{"err": err})
		} else if ok {
			return plan, nil
		}
	}

	if r.lookup == nil {
		// sin upstream no se regala premium
		return entitlements.PlanFree, ErrNotConfigured
	}

	plan, err := r.resolve(ctx, email)
	if err != nil {
		return entitlements.PlanFree, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, email, plan, r.ttl); err != nil {
			r.log.Warn("plan cache set failed", map[string]any{"err": err})
		}
	}
	return plan, nil
}

func (r *Resolver) resolve(ctx context.Context, email string) (entitlements.Plan, error) {
	customer, ok, err := r.lookup.FindCustomerByEmail(ctx, email)
	if err != nil {
		return entitlements.PlanFree, err
	}
	if !ok {
		return entitlements.PlanFree, nil
	}

	subs, err := r.lookup.ListActiveSubscriptions(ctx, customer.ID)
	if err != nil {
		return entitlements.PlanFree, err
	}
	for _, s := range subs {
		if strings.EqualFold(s.Status, "ACTIVE") {
			return entitlements.PlanPremium, nil
		}
	}
	return entitlements.PlanFree, nil
}

var _ entitlements.Resolver = (*Resolver)(nil)
