package matrix

import (
	"reflect"
	"testing"
)

func TestCachePolicyRendering(t *testing.T) {
	p := CachePolicy{
		FromRef: "registry.example.com/cache:numpy",
		ToRef:   "registry.example.com/cache:numpy",
		Mode:    CacheMax,
	}

	wantFrom := []string{"type=registry,ref=registry.example.com/cache:numpy"}
	if got := p.CacheFrom(); !reflect.DeepEqual(got, wantFrom) {
		t.Errorf("CacheFrom = %v, want %v", got, wantFrom)
	}
	wantTo := []string{"type=registry,ref=registry.example.com/cache:numpy,mode=max"}
	if got := p.CacheTo(); !reflect.DeepEqual(got, wantTo) {
		t.Errorf("CacheTo = %v, want %v", got, wantTo)
	}

	p.Mode = CacheNone
	wantTo = []string{"type=registry,ref=registry.example.com/cache:numpy"}
	if got := p.CacheTo(); !reflect.DeepEqual(got, wantTo) {
		t.Errorf("CacheTo (none) = %v, want %v", got, wantTo)
	}
}

func TestCachePolicyEmptyRef(t *testing.T) {
	var p CachePolicy
	if p.CacheFrom() != nil || p.CacheTo() != nil {
		t.Error("empty policy should render no directives")
	}
}

func TestPoliciesPerTargetLocations(t *testing.T) {
	g, err := Link([]string{"numpy", "pandas"}, "base")
	if err != nil {
		t.Fatal(err)
	}

	policies := Policies(g, "registry.example.com/cache", CacheMax)
	if len(policies) != 3 {
		t.Fatalf("policies = %d entries, want 3", len(policies))
	}
	if policies["base"].ToRef != "registry.example.com/cache:base" {
		t.Errorf("base cache ref = %q", policies["base"].ToRef)
	}
	if policies["numpy"].ToRef == policies["pandas"].ToRef {
		t.Error("leaf targets must get distinct cache locations")
	}
}

func TestPoliciesDisabledWithoutRepo(t *testing.T) {
	g, err := Link([]string{"numpy"}, "base")
	if err != nil {
		t.Fatal(err)
	}
	for name, p := range Policies(g, "", CacheMax) {
		if p.FromRef != "" || p.ToRef != "" {
			t.Errorf("%s: expected empty cache refs, got %+v", name, p)
		}
	}
}
