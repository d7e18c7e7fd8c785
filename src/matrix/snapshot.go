package matrix

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
)

// VersionSource supplies raw version strings, one key per read. Reads are
// independent and side-effect-free; implementations live in src/versionsrc.
type VersionSource interface {
	Read(key string) (string, error)
}

// Snapshot is the immutable set of version inputs for one generation run.
// All sources are read before any tag is composed, so the run never observes
// a mid-run update.
type Snapshot struct {
	Package string
	Base    string
	Targets map[string]string // keyed by target name
}

// LoadSnapshot reads the package version, the base version, and every
// per-target version, then validates their shapes. Per-target reads fan out
// concurrently and the load waits for all of them; any failed read fails the
// whole run.
func LoadSnapshot(ctx context.Context, src VersionSource, packageKey, baseKey string, targets []string) (*Snapshot, error) {
	pkg, err := readVersion(src, packageKey)
	if err != nil {
		return nil, err
	}
	if err := checkPackageVersion(packageKey, pkg); err != nil {
		return nil, err
	}

	base, err := readVersion(src, baseKey)
	if err != nil {
		return nil, err
	}
	if err := checkIncrement(baseKey, base); err != nil {
		return nil, err
	}

	versions := make([]string, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range targets {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := readVersion(src, name)
			if err != nil {
				return err
			}
			if err := checkIncrement(name, v); err != nil {
				return err
			}
			versions[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Package: pkg,
		Base:    base,
		Targets: make(map[string]string, len(targets)),
	}
	for i, name := range targets {
		snap.Targets[name] = versions[i]
	}
	return snap, nil
}

func readVersion(src VersionSource, key string) (string, error) {
	v, err := src.Read(key)
	if err != nil {
		return "", &MissingVersionError{Key: key, Err: err}
	}
	if v == "" {
		return "", &MissingVersionError{Key: key}
	}
	return v, nil
}

// checkPackageVersion enforces plain MAJOR.MINOR.PATCH. The workflow-name
// parser counts separator-delimited components, so a prerelease or metadata
// suffix would corrupt the name namespace.
func checkPackageVersion(key, v string) error {
	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		return &MissingVersionError{Key: key, Err: fmt.Errorf("package version %q is not MAJOR.MINOR.PATCH: %w", v, err)}
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return &MissingVersionError{Key: key, Err: fmt.Errorf("package version %q must not carry prerelease or build metadata", v)}
	}
	return nil
}

// checkIncrement enforces a single separator-free token for base and
// per-target increments.
func checkIncrement(key, v string) error {
	if strings.ContainsAny(v, Sep+".") || strings.ContainsFunc(v, isSpace) {
		return &MissingVersionError{Key: key, Err: fmt.Errorf("increment %q must be a single token without separators", v)}
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
