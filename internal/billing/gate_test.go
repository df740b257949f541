package billing

import (
	"errors"
	"strings"
	"testing"

	"gateway/internal/domain"
)

func testGate(t *testing.T) *Gate {
	t.Helper()
	return NewGate(DefaultRegistry())
}

func userOn(plan string, features domain.FeatureMap) domain.AuthenticatedUser {
	if features == nil {
		features = domain.FeatureMap{}
	}
	return domain.AuthenticatedUser{
		ID:       "user-1",
		Email:    "user@example.com",
		Role:     domain.RoleUser,
		PlanID:   plan,
		Features: features,
	}
}

func sessionOn(plan string, features domain.FeatureMap) *domain.AuthenticatedSession {
	return &domain.AuthenticatedSession{SessionID: "sess-1", User: userOn(plan, features)}
}

func TestHasFeature(t *testing.T) {
	g := testGate(t)
	tests := []struct {
		name string
		user domain.AuthenticatedUser
		key  string
		want bool
	}{
		{
			name: "override true wins regardless of plan",
			user: userOn("free", domain.FeatureMap{"feature:advanced-analytics": domain.BoolValue(true)}),
			key:  "feature:advanced-analytics",
			want: true,
		},
		{
			name: "override false suppresses plan grant",
			user: userOn("pro", domain.FeatureMap{"feature:advanced-analytics": domain.BoolValue(false)}),
			key:  "feature:advanced-analytics",
			want: false,
		},
		{
			name: "no override falls back to plan grant",
			user: userOn("pro", nil),
			key:  "feature:advanced-analytics",
			want: true,
		},
		{
			name: "no override and plan without feature",
			user: userOn("free", nil),
			key:  "feature:advanced-analytics",
			want: false,
		},
		{
			name: "unknown plan degrades to default plan features",
			user: userOn("no-such-plan", nil),
			key:  "feature:projects-basic",
			want: true,
		},
		{
			name: "numeric override non-zero is truthy",
			user: userOn("free", domain.FeatureMap{"feature:advanced-analytics": domain.NumberValue(1)}),
			key:  "feature:advanced-analytics",
			want: true,
		},
		{
			name: "numeric override zero is falsy",
			user: userOn("pro", domain.FeatureMap{"feature:advanced-analytics": domain.NumberValue(0)}),
			key:  "feature:advanced-analytics",
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.HasFeature(tc.user, tc.key); got != tc.want {
				t.Fatalf("HasFeature(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestGetLimit(t *testing.T) {
	g := testGate(t)

	if limit := g.GetLimit(userOn("free", nil), "limit:max-projects"); limit == nil || *limit != 1 {
		t.Fatalf("GetLimit(free) = %v, want 1", limit)
	}
	if limit := g.GetLimit(userOn("pro", nil), "limit:max-projects"); limit != nil {
		t.Fatalf("GetLimit(pro) = %d, want unlimited", *limit)
	}

	// Presence of a numeric override is the signal, so an explicit zero is a
	// zero limit, not "no override".
	withZero := userOn("pro", domain.FeatureMap{"limit:max-projects": domain.NumberValue(0)})
	if limit := g.GetLimit(withZero, "limit:max-projects"); limit == nil || *limit != 0 {
		t.Fatalf("GetLimit(zero override) = %v, want 0", limit)
	}

	withTen := userOn("free", domain.FeatureMap{"limit:max-projects": domain.NumberValue(10)})
	if limit := g.GetLimit(withTen, "limit:max-projects"); limit == nil || *limit != 10 {
		t.Fatalf("GetLimit(numeric override) = %v, want 10", limit)
	}

	// A boolean on a limit key is not a numeric override.
	withBool := userOn("free", domain.FeatureMap{"limit:max-projects": domain.BoolValue(true)})
	if limit := g.GetLimit(withBool, "limit:max-projects"); limit == nil || *limit != 1 {
		t.Fatalf("GetLimit(bool on limit key) = %v, want plan value 1", limit)
	}
}

func TestRequireFeature(t *testing.T) {
	g := testGate(t)

	if err := g.RequireFeature(sessionOn("pro", nil), "feature:advanced-analytics"); err != nil {
		t.Fatalf("RequireFeature(pro) unexpected error: %v", err)
	}

	err := g.RequireFeature(sessionOn("free", nil), "feature:advanced-analytics")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("RequireFeature(free) = %v, want ErrForbidden", err)
	}
	if !strings.Contains(err.Error(), "feature:advanced-analytics") {
		t.Fatalf("RequireFeature error %q does not name the feature key", err)
	}

	if err := g.RequireFeature(nil, "feature:advanced-analytics"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("RequireFeature(nil session) = %v, want ErrUnauthenticated", err)
	}
}

func TestEnforceLimit(t *testing.T) {
	g := testGate(t)
	tests := []struct {
		name      string
		session   *domain.AuthenticatedSession
		usage     int
		forbidden bool
	}{
		{name: "free below limit passes", session: sessionOn("free", nil), usage: 0, forbidden: false},
		{name: "free at limit forbidden", session: sessionOn("free", nil), usage: 1, forbidden: true},
		{name: "free above limit forbidden", session: sessionOn("free", nil), usage: 5, forbidden: true},
		{name: "pro unlimited never forbidden", session: sessionOn("pro", nil), usage: 1 << 20, forbidden: false},
		{
			name:      "zero override always forbidden",
			session:   sessionOn("pro", domain.FeatureMap{"limit:max-projects": domain.NumberValue(0)}),
			usage:     0,
			forbidden: true,
		},
		{
			name:      "raised override passes",
			session:   sessionOn("free", domain.FeatureMap{"limit:max-projects": domain.NumberValue(3)}),
			usage:     2,
			forbidden: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.EnforceLimit(tc.session, "limit:max-projects", tc.usage)
			if tc.forbidden {
				if !errors.Is(err, domain.ErrForbidden) {
					t.Fatalf("EnforceLimit() = %v, want ErrForbidden", err)
				}
				if !strings.Contains(err.Error(), "limit:max-projects") {
					t.Fatalf("EnforceLimit error %q does not name the limit key", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EnforceLimit() unexpected error: %v", err)
			}
		})
	}
}
