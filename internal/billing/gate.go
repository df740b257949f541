package billing

import (
	"fmt"

	"gateway/internal/domain"
)

// Gate makes allow/deny decisions for feature keys and usage limits. All
// decisions are pure functions of the user, the catalog, and the given key.
type Gate struct {
	registry *Registry
}

// NewGate builds a gate over the given plan registry.
func NewGate(registry *Registry) *Gate {
	return &Gate{registry: registry}
}

// HasFeature reports whether the user may use featureKey. A per-user
// override wins whenever the key is present, so an explicit false suppresses
// a plan-granted feature. Without an override the user's plan decides.
func (g *Gate) HasFeature(user domain.AuthenticatedUser, featureKey string) bool {
	if v, ok := user.Features[featureKey]; ok {
		return v.Truthy()
	}
	return g.registry.PlanByID(user.PlanID).HasFeature(featureKey)
}

// GetLimit resolves the effective limit for limitKey. A numeric per-user
// override wins when present, including an explicit zero. Otherwise the
// plan's configured value applies. Nil means unlimited.
func (g *Gate) GetLimit(user domain.AuthenticatedUser, limitKey string) *int {
	if v, ok := user.Features[limitKey]; ok {
		if n, ok := v.Limit(); ok {
			return &n
		}
	}
	return g.registry.PlanByID(user.PlanID).Limit(limitKey)
}

// RequireFeature returns ErrForbidden naming featureKey when the session's
// user is not entitled to it.
func (g *Gate) RequireFeature(session *domain.AuthenticatedSession, featureKey string) error {
	if session == nil {
		return domain.ErrUnauthenticated
	}
	if !g.HasFeature(session.User, featureKey) {
		return fmt.Errorf("%w: feature %s unavailable for current plan", domain.ErrForbidden, featureKey)
	}
	return nil
}

// EnforceLimit returns ErrForbidden naming limitKey when the effective limit
// is set and currentUsage has reached it. A nil limit never denies.
func (g *Gate) EnforceLimit(session *domain.AuthenticatedSession, limitKey string, currentUsage int) error {
	if session == nil {
		return domain.ErrUnauthenticated
	}
	limit := g.GetLimit(session.User, limitKey)
	if limit != nil && currentUsage >= *limit {
		return fmt.Errorf("%w: limit reached for %s", domain.ErrForbidden, limitKey)
	}
	return nil
}
