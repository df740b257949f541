package billing

import "fmt"

// FeatureDefinition describes a gated capability bundled in a plan.
type FeatureDefinition struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// PlanDefinition is one subscription tier. Price is in minor currency units.
// A nil limit value means unlimited.
type PlanDefinition struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Price    int                 `json:"price"`
	Currency string              `json:"currency"`
	Features []FeatureDefinition `json:"features"`
	Limits   map[string]*int     `json:"limits"`
}

// HasFeature reports whether the plan's feature set contains key.
func (p PlanDefinition) HasFeature(key string) bool {
	for _, f := range p.Features {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Limit returns the plan's configured limit for key. Nil means unlimited;
// an unconfigured key is also unlimited.
func (p PlanDefinition) Limit(key string) *int {
	return p.Limits[key]
}

// Registry is the read-only plan catalog. It is populated once at process
// start and safe for unsynchronized concurrent reads afterwards.
type Registry struct {
	plans []PlanDefinition
	index map[string]int
}

// NewRegistry builds a registry from the given plans. The first plan is the
// default returned for unknown ids, conventionally the free tier.
func NewRegistry(plans ...PlanDefinition) (*Registry, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("billing: at least one plan is required")
	}
	index := make(map[string]int, len(plans))
	for i, p := range plans {
		if p.ID == "" {
			return nil, fmt.Errorf("billing: plan at position %d has no id", i)
		}
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("billing: duplicate plan id %q", p.ID)
		}
		index[p.ID] = i
	}
	return &Registry{plans: plans, index: index}, nil
}

// PlanByID returns the plan for id. Lookup never fails: an unknown or empty
// id degrades to the default plan.
func (r *Registry) PlanByID(id string) PlanDefinition {
	if i, ok := r.index[id]; ok {
		return r.plans[i]
	}
	return r.plans[0]
}

// Plans returns the catalog in declaration order.
func (r *Registry) Plans() []PlanDefinition {
	out := make([]PlanDefinition, len(r.plans))
	copy(out, r.plans)
	return out
}

func limitOf(n int) *int {
	return &n
}

// DefaultRegistry returns the built-in plan catalog.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		PlanDefinition{
			ID:       "free",
			Name:     "Free",
			Price:    0,
			Currency: "USD",
			Features: []FeatureDefinition{
				{Key: "feature:projects-basic", Description: "Create up to 1 project"},
			},
			Limits: map[string]*int{
				"limit:max-projects": limitOf(1),
			},
		},
		PlanDefinition{
			ID:       "pro",
			Name:     "Pro",
			Price:    2900,
			Currency: "USD",
			Features: []FeatureDefinition{
				{Key: "feature:projects-basic", Description: "Unlimited projects"},
				{Key: "feature:advanced-analytics", Description: "Advanced analytics suite"},
			},
			Limits: map[string]*int{
				"limit:max-projects": nil,
			},
		},
		PlanDefinition{
			ID:       "business",
			Name:     "Business",
			Price:    9900,
			Currency: "USD",
			Features: []FeatureDefinition{
				{Key: "feature:projects-basic", Description: "Unlimited projects"},
				{Key: "feature:advanced-analytics", Description: "Advanced analytics suite"},
				{Key: "feature:priority-support", Description: "Priority support"},
				{Key: "feature:team-collaboration", Description: "Team collaboration"},
			},
			Limits: map[string]*int{
				"limit:max-projects": nil,
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return r
}
