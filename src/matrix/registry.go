package matrix

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// NamespaceLister enumerates the immediate children of a directory-like
// namespace. Backed by a real filesystem in production; tests use a
// hardcoded listing.
type NamespaceLister interface {
	ListChildren(path string) ([]string, error)
}

// Target names end up in image tags and workflow names, so they are held to
// the DNS-1123 label shape: lowercase alphanumeric with interior hyphens.
var nameRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Enumerate lists candidate target names under root, drops names in ignore,
// deduplicates, and sorts. The result is independent of the listing order
// the backend happened to produce.
func Enumerate(lister NamespaceLister, root string, ignore []string) ([]string, error) {
	children, err := lister.ListChildren(root)
	if err != nil {
		return nil, fmt.Errorf("listing targets under %s: %w", root, err)
	}

	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	seen := make(map[string]bool, len(children))
	names := make([]string, 0, len(children))
	for _, name := range children {
		if skip[name] || seen[name] {
			continue
		}
		if !nameRe.MatchString(name) {
			return nil, &InvalidTargetNameError{
				Name:   name,
				Reason: "must be lowercase alphanumeric with interior hyphens",
			}
		}
		seen[name] = true
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, &EmptyRegistryError{Root: root}
	}

	sort.Strings(names)
	return names, nil
}

// DirLister lists immediate subdirectories of a root directory. Plain files
// under the root are not build targets.
type DirLister struct{}

func (DirLister) ListChildren(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// StaticLister serves a fixed listing. Used by tests and by configurations
// that enumerate targets from the config file instead of the filesystem.
type StaticLister []string

func (s StaticLister) ListChildren(string) ([]string, error) {
	return append([]string(nil), s...), nil
}
