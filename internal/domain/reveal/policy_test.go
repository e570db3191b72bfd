package reveal

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petid/internal/ports/auth"
	"petid/internal/ports/entitlements"
)

func TestPolicy_Defaults(t *testing.T) {
	p, err := NewPolicy(nil)
	require.NoError(t, err)

	free, err := p.Decide(Subject{Plan: entitlements.PlanFree})
	require.NoError(t, err)
	assert.True(t, free.Reveals(SectionDiet))
	assert.True(t, free.Reveals(SectionVaccines))
	assert.True(t, free.Reveals(SectionCare))
	assert.False(t, free.Reveals(SectionBreedInsights))
	assert.Equal(t, []Section{SectionBreedInsights, SectionPremiumFeatures}, free.Locked())

	premium, err := p.Decide(Subject{Plan: entitlements.PlanPremium, Authenticated: true})
	require.NoError(t, err)
	assert.Empty(t, premium.Locked())
}

func TestPolicy_EmptyPlanIsFree(t *testing.T) {
	p, err := NewPolicy(nil)
	require.NoError(t, err)

	d, err := p.Decide(Subject{})
	require.NoError(t, err)
	assert.False(t, d.Reveals(SectionPremiumFeatures))
}

func TestPolicy_Overrides(t *testing.T) {
	p, err := NewPolicy(map[Section]string{
		SectionBreedInsights: `authenticated`,
	})
	require.NoError(t, err)

	d, err := p.Decide(Subject{Plan: entitlements.PlanFree, Authenticated: true})
	require.NoError(t, err)
	assert.True(t, d.Reveals(SectionBreedInsights))
	assert.False(t, d.Reveals(SectionPremiumFeatures))
}

func TestPolicy_RejectsBadRules(t *testing.T) {
	_, err := NewPolicy(map[Section]string{SectionDiet: `plan ==`})
	require.Error(t, err)

	_, err = NewPolicy(map[Section]string{SectionDiet: `"premium"`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must evaluate to bool")

	_, err = NewPolicy(map[Section]string{"photos": `true`})
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules(strings.NewReader("rules:\n  breed_insights: 'authenticated && plan == \"premium\"'\n"))
	require.NoError(t, err)
	assert.Equal(t, `authenticated && plan == "premium"`, rules[SectionBreedInsights])

	empty, err := LoadRules(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = LoadRules(strings.NewReader("rules:\n  photos: 'true'\n"))
	require.ErrorIs(t, err, ErrUnknownSection)
}

type stubResolver struct {
	plan  entitlements.Plan
	err   error
	calls int
}

func (s *stubResolver) PlanFor(_ context.Context, _ auth.Claims) (entitlements.Plan, error) {
	s.calls++
	return s.plan, s.err
}

func TestGate_Decide(t *testing.T) {
	policy, err := NewPolicy(nil)
	require.NoError(t, err)

	res := &stubResolver{plan: entitlements.PlanPremium}
	g := NewGate(policy, res, nil)

	plan, d := g.Decide(context.Background(), auth.Claims{UserID: "u-1", Email: "a@b.com"}, true)
	assert.Equal(t, entitlements.PlanPremium, plan)
	assert.True(t, d.Reveals(SectionBreedInsights))

	// sin claims no se consulta el resolver
	plan, d = g.Decide(context.Background(), auth.Claims{}, false)
	assert.Equal(t, entitlements.PlanFree, plan)
	assert.False(t, d.Reveals(SectionBreedInsights))
	assert.Equal(t, 1, res.calls)
}

func TestGate_ResolverErrorFailsClosed(t *testing.T) {
	policy, err := NewPolicy(nil)
	require.NoError(t, err)

	g := NewGate(policy, &stubResolver{err: errors.New("upstream down")}, nil)
	plan, d := g.Decide(context.Background(), auth.Claims{UserID: "u-1"}, true)
	assert.Equal(t, entitlements.PlanFree, plan)
	assert.False(t, d.Reveals(SectionPremiumFeatures))
	assert.True(t, d.Reveals(SectionDiet))
}
