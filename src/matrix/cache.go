package matrix

// CacheMode selects how much layer cache a build exports.
type CacheMode string

const (
	CacheNone CacheMode = "none" // final-stage layers only
	CacheMax  CacheMode = "max"  // all intermediate layers
)

// CachePolicy describes where one target's layer cache is read from and
// written to.
type CachePolicy struct {
	FromRef string
	ToRef   string
	Mode    CacheMode
}

// CacheFrom renders the policy as buildx cache-from directives.
func (p CachePolicy) CacheFrom() []string {
	if p.FromRef == "" {
		return nil
	}
	return []string{"type=registry,ref=" + p.FromRef}
}

// CacheTo renders the policy as buildx cache-to directives.
func (p CachePolicy) CacheTo() []string {
	if p.ToRef == "" {
		return nil
	}
	d := "type=registry,ref=" + p.ToRef
	if p.Mode == CacheMax {
		d += ",mode=max"
	}
	return []string{d}
}

// Policies builds the per-target cache table for a graph. The base target
// gets the shared cache location; each leaf gets a per-target one, so one
// leaf's rebuild never evicts another's cache. An empty cacheRepo disables
// caching for the whole matrix.
func Policies(g *Graph, cacheRepo string, mode CacheMode) map[string]CachePolicy {
	policies := make(map[string]CachePolicy, len(g.Leaves)+1)
	for _, t := range g.Targets() {
		var ref string
		if cacheRepo != "" {
			ref = cacheRepo + ":" + t.Name
		}
		policies[t.Name] = CachePolicy{FromRef: ref, ToRef: ref, Mode: mode}
	}
	return policies
}
