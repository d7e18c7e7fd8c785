package matrix

import "fmt"

// Kind distinguishes the shared base target from leaves derived of it.
type Kind string

const (
	KindBase Kind = "base"
	KindLeaf Kind = "leaf"
)

// Target is one buildable unit of the matrix. Constructed once per
// generation run and never mutated.
type Target struct {
	Name         string
	Kind         Kind
	InheritsFrom string // empty for the base target
}

// Graph is the two-level inheritance DAG: one base, N leaves. Acyclic by
// construction; recomputed fully on every run.
type Graph struct {
	Base   Target
	Leaves []Target
}

// Link attaches every enumerated target to baseTargetName as its
// build-context inheritance parent. The base pseudo-target must have been
// excluded from enumeration already; finding it among the leaves is a
// configuration error.
func Link(names []string, baseTargetName string) (*Graph, error) {
	if !nameRe.MatchString(baseTargetName) {
		return nil, &InvalidTargetNameError{
			Name:   baseTargetName,
			Reason: "must be lowercase alphanumeric with interior hyphens",
		}
	}

	g := &Graph{
		Base:   Target{Name: baseTargetName, Kind: KindBase},
		Leaves: make([]Target, 0, len(names)),
	}
	for _, name := range names {
		if name == baseTargetName {
			return nil, fmt.Errorf("base target %q must be excluded from the registry", baseTargetName)
		}
		g.Leaves = append(g.Leaves, Target{
			Name:         name,
			Kind:         KindLeaf,
			InheritsFrom: baseTargetName,
		})
	}
	return g, nil
}

// Targets returns the base target followed by the leaves in registry order.
func (g *Graph) Targets() []Target {
	out := make([]Target, 0, len(g.Leaves)+1)
	out = append(out, g.Base)
	out = append(out, g.Leaves...)
	return out
}
