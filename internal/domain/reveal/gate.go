package reveal

import (
	"context"
	"strings"

	"petid/internal/platform/logger"
	"petid/internal/ports/auth"
	"petid/internal/ports/entitlements"
)

// Gate combina el plan del usuario con la política.
// Es la "verificación externa" que decide qué mostrar después de que el motor corrió.
type Gate struct {
	policy *Policy
	plans  entitlements.Resolver
	log    logger.Logger
}

// NewGate: plans puede ser nil (todos free).
func NewGate(policy *Policy, plans entitlements.Resolver, log logger.Logger) *Gate {
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{policy: policy, plans: plans, log: log}
}

// Decide nunca falla: ante errores del resolver o de la política
// se degrada a free / sección oculta y lo registra.
func (g *Gate) Decide(ctx context.Context, claims auth.Claims, authenticated bool) (entitlements.Plan, Decision) {
	plan := entitlements.PlanFree
	authenticated = authenticated && strings.TrimSpace(claims.UserID) != ""

	if authenticated && g.plans != nil {
		p, err := g.plans.PlanFor(ctx, claims)
		if err != nil {
			g.log.Warn("plan lookup failed, serving free plan", map[string]any{
				"user_id": claims.UserID,
				"err":     err,
			})
		} else if p != "" {
			plan = p
		}
	}

	d, err := g.policy.Decide(Subject{Plan: plan, Authenticated: authenticated})
	if err != nil {
		g.log.Error("reveal policy evaluation failed", map[string]any{"err": err})
	}
	return plan, d
}
