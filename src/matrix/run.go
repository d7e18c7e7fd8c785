package matrix

import (
	"context"

	"github.com/data-apis/bakegen/src/bake"
)

// Params are the fully resolved inputs for one generation run. The caller
// constructs them once; no component reaches into ambient state.
type Params struct {
	Root       string // namespace root enumerating build targets
	BaseTarget string
	Ignore     []string

	PackageKey string // version-source key for the package version
	BaseKey    string // version-source key for the base increment

	ImageRepo    string
	CacheRepo    string
	CacheMode    CacheMode
	ContextsRoot string
	Dockerfile   string
	GlobalArgs   map[string]string
	IncludeBase  bool
}

// Result carries the document plus the intermediate state the CLI reports.
type Result struct {
	File     *bake.File
	Graph    *Graph
	Snapshot *Snapshot
	Tags     map[string]string // target name -> resolved tag
	Policies map[string]CachePolicy
}

// Run computes one complete build matrix: enumerate targets, link the
// inheritance graph, snapshot all versions, resolve tags, and emit the bake
// document. Any failure aborts the run with nothing emitted.
func Run(ctx context.Context, lister NamespaceLister, versions VersionSource, p Params) (*Result, error) {
	names, err := Enumerate(lister, p.Root, p.Ignore)
	if err != nil {
		return nil, err
	}

	graph, err := Link(names, p.BaseTarget)
	if err != nil {
		return nil, err
	}

	snap, err := LoadSnapshot(ctx, versions, p.PackageKey, p.BaseKey, names)
	if err != nil {
		return nil, err
	}

	resolver, err := NewResolver(snap.Package, snap.Base)
	if err != nil {
		return nil, err
	}

	tags := make(map[string]string, len(names)+1)
	tags[graph.Base.Name] = resolver.BaseTag()
	for _, t := range graph.Leaves {
		tag, err := resolver.LeafTag(t.Name, snap.Targets[t.Name])
		if err != nil {
			return nil, err
		}
		tags[t.Name] = tag
	}

	policies := Policies(graph, p.CacheRepo, p.CacheMode)

	file, err := Generate(graph, tags, policies, GenerateOptions{
		PackageVersion: snap.Package,
		ImageRepo:      p.ImageRepo,
		ContextsRoot:   p.ContextsRoot,
		Dockerfile:     p.Dockerfile,
		GlobalArgs:     p.GlobalArgs,
		IncludeBase:    p.IncludeBase,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		File:     file,
		Graph:    graph,
		Snapshot: snap,
		Tags:     tags,
		Policies: policies,
	}, nil
}
