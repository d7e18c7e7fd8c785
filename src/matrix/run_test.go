package matrix

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/data-apis/bakegen/src/versionsrc"
)

func runParams() Params {
	return Params{
		Root:         "targets",
		BaseTarget:   "base",
		Ignore:       []string{"base", "django"},
		PackageKey:   "package",
		BaseKey:      "base",
		CacheRepo:    "registry.example.com/cache",
		CacheMode:    CacheMax,
		ContextsRoot: "targets",
		Dockerfile:   "Dockerfile",
		IncludeBase:  true,
	}
}

func runVersions() versionsrc.Static {
	return versionsrc.Static{
		"package": "2.1.0",
		"base":    "3",
		"numpy":   "1",
		"pandas":  "2",
	}
}

func TestRunEndToEnd(t *testing.T) {
	res, err := Run(context.Background(), StaticLister{"base", "pandas", "numpy"}, runVersions(), runParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := map[string]string{
		"base":   "2.1.0-3",
		"numpy":  "numpy-2.1.0-3-1",
		"pandas": "pandas-2.1.0-3-2",
	}
	for name, tag := range want {
		if res.Tags[name] != tag {
			t.Errorf("tag[%s] = %q, want %q", name, res.Tags[name], tag)
		}
	}

	if got := res.File.Target["numpy"].Inherits; len(got) != 1 || got[0] != "base" {
		t.Errorf("numpy inherits = %v", got)
	}
}

// The document must not depend on the order the lister happened to return
// names in.
func TestRunListingOrderIrrelevant(t *testing.T) {
	a, err := Run(context.Background(), StaticLister{"base", "pandas", "numpy"}, runVersions(), runParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(context.Background(), StaticLister{"numpy", "base", "pandas"}, runVersions(), runParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	aj, _ := a.File.EncodeJSON()
	bj, _ := b.File.EncodeJSON()
	if !bytes.Equal(aj, bj) {
		t.Error("permuted listings produced different documents")
	}
}

func TestRunMissingVersionAbortsBeforeEmission(t *testing.T) {
	versions := runVersions()
	delete(versions, "pandas")

	res, err := Run(context.Background(), StaticLister{"base", "pandas", "numpy"}, versions, runParams())

	var missing *MissingVersionError
	if !errors.As(err, &missing) || missing.Key != "pandas" {
		t.Fatalf("expected MissingVersionError for pandas, got %v", err)
	}
	if res != nil {
		t.Error("no result may be returned on failure")
	}
}

func TestRunEmptyRegistryAborts(t *testing.T) {
	_, err := Run(context.Background(), StaticLister{"base"}, runVersions(), runParams())

	var empty *EmptyRegistryError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyRegistryError, got %v", err)
	}
}
