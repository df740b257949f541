package billing

import "testing"

func TestPlanByIDUnknownFallsBackToDefault(t *testing.T) {
	r := DefaultRegistry()
	def := r.PlanByID("")
	if def.ID != "free" {
		t.Fatalf("PlanByID(\"\") = %q, want free", def.ID)
	}
	for _, id := range []string{"enterprise", "FREE", "pro-v2", "??"} {
		if got := r.PlanByID(id); got.ID != def.ID {
			t.Fatalf("PlanByID(%q) = %q, want default %q", id, got.ID, def.ID)
		}
	}
}

func TestPlanByIDKnown(t *testing.T) {
	r := DefaultRegistry()
	for _, id := range []string{"free", "pro", "business"} {
		if got := r.PlanByID(id); got.ID != id {
			t.Fatalf("PlanByID(%q) = %q", id, got.ID)
		}
	}
}

func TestPlansDeclarationOrder(t *testing.T) {
	r := DefaultRegistry()
	plans := r.Plans()
	want := []string{"free", "pro", "business"}
	if len(plans) != len(want) {
		t.Fatalf("Plans() returned %d plans, want %d", len(plans), len(want))
	}
	for i, id := range want {
		if plans[i].ID != id {
			t.Fatalf("Plans()[%d] = %q, want %q", i, plans[i].ID, id)
		}
	}
}

func TestPlansReturnsCopy(t *testing.T) {
	r := DefaultRegistry()
	plans := r.Plans()
	plans[0] = PlanDefinition{ID: "mutated"}
	if got := r.Plans()[0].ID; got != "free" {
		t.Fatalf("catalog mutated through Plans() copy: first id %q", got)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	if _, err := NewRegistry(); err == nil {
		t.Fatalf("NewRegistry() with no plans expected error")
	}
	if _, err := NewRegistry(PlanDefinition{ID: ""}); err == nil {
		t.Fatalf("NewRegistry() with empty id expected error")
	}
	if _, err := NewRegistry(PlanDefinition{ID: "a"}, PlanDefinition{ID: "a"}); err == nil {
		t.Fatalf("NewRegistry() with duplicate ids expected error")
	}
}

func TestPlanLimits(t *testing.T) {
	r := DefaultRegistry()
	free := r.PlanByID("free")
	if limit := free.Limit("limit:max-projects"); limit == nil || *limit != 1 {
		t.Fatalf("free limit:max-projects = %v, want 1", limit)
	}
	pro := r.PlanByID("pro")
	if limit := pro.Limit("limit:max-projects"); limit != nil {
		t.Fatalf("pro limit:max-projects = %d, want unlimited", *limit)
	}
	if limit := free.Limit("limit:unconfigured"); limit != nil {
		t.Fatalf("unconfigured limit = %d, want unlimited", *limit)
	}
}
