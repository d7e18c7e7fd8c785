package matrix

import (
	"path"
	"sort"

	"github.com/data-apis/bakegen/src/bake"
)

// Fixed build-arg keys every generated document uses.
const (
	// ArgPackageVersion carries the global package version into the base
	// image build.
	ArgPackageVersion = "PACKAGE_VERSION"

	// ArgFrom carries the fully qualified base image reference into each
	// leaf build.
	ArgFrom = "FROM"
)

// GenerateOptions are the pre-resolved knobs for one document emission.
type GenerateOptions struct {
	PackageVersion string            // global release version, set on the base target
	ImageRepo      string            // image reference prefix, e.g. "ghcr.io/data-apis/record-api"
	ContextsRoot   string            // directory holding one build context per target
	Dockerfile     string            // dockerfile name within each context
	GlobalArgs     map[string]string // merged into every target's args
	IncludeBase    bool              // whether the default group lists the base target
}

// Generate emits the complete bake document for a graph. Pure: no filesystem
// or network access, and identical inputs produce structurally identical
// documents. Either every target resolves a tag and a cache policy or the
// whole emission fails; a partial matrix would silently degrade build
// reproducibility for the targets it dropped.
func Generate(g *Graph, tags map[string]string, policies map[string]CachePolicy, opts GenerateOptions) (*bake.File, error) {
	for _, t := range g.Targets() {
		if _, ok := tags[t.Name]; !ok {
			return nil, &UnresolvedTagError{Target: t.Name}
		}
		if _, ok := policies[t.Name]; !ok {
			return nil, &UnresolvedCachePolicyError{Target: t.Name}
		}
	}

	doc := bake.New()

	base := g.Base
	baseRef := imageRef(opts.ImageRepo, base.Name, tags[base.Name])
	doc.Target[base.Name] = bake.Target{
		Context:    path.Join(opts.ContextsRoot, base.Name),
		Dockerfile: opts.Dockerfile,
		Args:       mergeArgs(opts.GlobalArgs, ArgPackageVersion, opts.PackageVersion),
		Tags:       []string{baseRef},
		CacheFrom:  policies[base.Name].CacheFrom(),
		CacheTo:    policies[base.Name].CacheTo(),
	}

	for _, t := range g.Leaves {
		doc.Target[t.Name] = bake.Target{
			Inherits:   []string{t.InheritsFrom},
			Context:    path.Join(opts.ContextsRoot, t.Name),
			Dockerfile: opts.Dockerfile,
			Args:       mergeArgs(opts.GlobalArgs, ArgFrom, baseRef),
			Tags:       []string{imageRef(opts.ImageRepo, t.Name, tags[t.Name])},
			CacheFrom:  policies[t.Name].CacheFrom(),
			CacheTo:    policies[t.Name].CacheTo(),
		}
	}

	group := make([]string, 0, len(g.Leaves)+1)
	for _, t := range g.Leaves {
		group = append(group, t.Name)
	}
	if opts.IncludeBase {
		group = append(group, base.Name)
	}
	sort.Strings(group)
	doc.Group[bake.DefaultGroup] = bake.Group{Targets: group}

	return doc, nil
}

// imageRef builds a pushable image reference: [repo/]name:tag.
func imageRef(repo, name, tag string) string {
	ref := name + ":" + tag
	if repo != "" {
		ref = repo + "/" + ref
	}
	return ref
}

// mergeArgs copies global args and sets one fixed key on top.
func mergeArgs(global map[string]string, key, value string) map[string]string {
	args := make(map[string]string, len(global)+1)
	for k, v := range global {
		args[k] = v
	}
	args[key] = value
	return args
}
