package entitlements

import (
	"context"
	"time"

	"petid/internal/ports/auth"
)

// Plan de suscripción del tutor.
// @Enum free, premium
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// Resolver decide el plan de un usuario autenticado.
// Lo consume la capa de presentación; el motor de recomendaciones no lo ve.
type Resolver interface {
	PlanFor(ctx context.Context, claims auth.Claims) (Plan, error)
}

// PlanCache guarda el plan ya resuelto, indexado por email.
type PlanCache interface {
	Get(ctx context.Context, key string) (Plan, bool, error)
	Set(ctx context.Context, key string, plan Plan, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}
