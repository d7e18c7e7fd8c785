// Package bake models the docker buildx bake configuration document: a
// `group` of target names plus a `target` table with inheritance, build
// args, tags, and cache directives.
package bake

import (
	"encoding/json"
	"sort"
)

// DefaultGroup is the group name buildx builds when none is named.
const DefaultGroup = "default"

// File is a complete bake configuration document.
type File struct {
	Group  map[string]Group  `json:"group"`
	Target map[string]Target `json:"target"`
}

// Group is an ordered list of target names built together.
type Group struct {
	Targets []string `json:"targets"`
}

// Target is one entry in the build matrix.
type Target struct {
	Inherits   []string          `json:"inherits,omitempty"`
	Context    string            `json:"context,omitempty"`
	Dockerfile string            `json:"dockerfile,omitempty"`
	Args       map[string]string `json:"args,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	CacheFrom  []string          `json:"cache-from,omitempty"`
	CacheTo    []string          `json:"cache-to,omitempty"`
}

// New returns an empty document with both top-level tables allocated.
func New() *File {
	return &File{
		Group:  map[string]Group{},
		Target: map[string]Target{},
	}
}

// EncodeJSON serializes the document. Map keys marshal in sorted order, so
// identical documents always serialize to identical bytes.
func (f *File) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// TargetNames returns the target table's keys in sorted order.
func (f *File) TargetNames() []string {
	names := make([]string, 0, len(f.Target))
	for name := range f.Target {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
