package subscriptions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petid/internal/adapters/storage/memory"
	"petid/internal/domain/checkout"
	"petid/internal/ports/auth"
	"petid/internal/ports/entitlements"
)

type fakeLookup struct {
	customers map[string]string
	active    map[string][]checkout.Subscription
	err       error
	calls     int
}

func (f *fakeLookup) FindCustomerByEmail(_ context.Context, email string) (checkout.CustomerRecord, bool, error) {
	f.calls++
	if f.err != nil {
		return checkout.CustomerRecord{}, false, f.err
	}
	id, ok := f.customers[email]
	return checkout.CustomerRecord{ID: id, Email: email}, ok, nil
}

func (f *fakeLookup) ListActiveSubscriptions(_ context.Context, customerID string) ([]checkout.Subscription, error) {
	return f.active[customerID], nil
}

func TestResolver_PlanFor(t *testing.T) {
	lookup := &fakeLookup{
		customers: map[string]string{"ana@example.com": "cus_1", "bia@example.com": "cus_2"},
		active:    map[string][]checkout.Subscription{"cus_1": {{ID: "sub_1", Status: "ACTIVE"}}},
	}
	r := NewResolver(Options{Lookup: lookup, Cache: memory.NewPlanCache()})
	ctx := context.Background()

	plan, err := r.PlanFor(ctx, auth.Claims{UserID: "u1", Email: "Ana@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, entitlements.PlanPremium, plan)

	// segunda vez sale de la caché
	_, err = r.PlanFor(ctx, auth.Claims{UserID: "u1", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, lookup.calls)

	plan, err = r.PlanFor(ctx, auth.Claims{UserID: "u2", Email: "bia@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entitlements.PlanFree, plan)

	plan, err = r.PlanFor(ctx, auth.Claims{UserID: "u3", Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entitlements.PlanFree, plan)
}

func TestResolver_NoEmailIsFree(t *testing.T) {
	lookup := &fakeLookup{}
	plan, err := NewResolver(Options{Lookup: lookup}).PlanFor(context.Background(), auth.Claims{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, entitlements.PlanFree, plan)
	assert.Zero(t, lookup.calls)
}

func TestResolver_PremiumForAll(t *testing.T) {
	plan, err := NewResolver(Options{PremiumForAll: true}).PlanFor(context.Background(), auth.Claims{})
	require.NoError(t, err)
	assert.Equal(t, entitlements.PlanPremium, plan)
}

func TestResolver_FailsClosed(t *testing.T) {
	cache := memory.NewPlanCache()
	r := NewResolver(Options{Lookup: &fakeLookup{err: errors.New("502")}, Cache: cache})

	plan, err := r.PlanFor(context.Background(), auth.Claims{Email: "ana@example.com"})
	require.Error(t, err)
	assert.Equal(t, entitlements.PlanFree, plan)

	_, ok, _ := cache.Get(context.Background(), "ana@example.com")
	assert.False(t, ok, "errors are not cached")

	plan, err = NewResolver(Options{}).PlanFor(context.Background(), auth.Claims{Email: "ana@example.com"})
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, entitlements.PlanFree, plan)
}
