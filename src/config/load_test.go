package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const exampleConfig = `targets_dir: targets
base_target: base
ignore:
  - django
image_repo: ghcr.io/data-apis/record-api
cache_repo: ghcr.io/data-apis/record-api/cache
cache_mode: max
dockerfile: Dockerfile
args:
  PIP_INDEX: https://pypi.org/simple
group_includes_base: false
output: docker-bake.json
versions:
  file: VERSION
  package_file: VERSION
workflow:
  schema_version: "2"
`

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".bakegen.yml")
	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetsDir != "targets" {
		t.Errorf("targets_dir = %q", cfg.TargetsDir)
	}
	if cfg.ImageRepo != "ghcr.io/data-apis/record-api" {
		t.Errorf("image_repo = %q", cfg.ImageRepo)
	}
	if cfg.IncludeBase() {
		t.Error("group_includes_base: false not honored")
	}
	if cfg.Workflow.SchemaVersion != "2" {
		t.Errorf("schema_version = %q", cfg.Workflow.SchemaVersion)
	}
	if cfg.Args["PIP_INDEX"] != "https://pypi.org/simple" {
		t.Errorf("args = %v", cfg.Args)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseTarget != "base" || cfg.Dockerfile != "Dockerfile" || cfg.CacheMode != "max" {
		t.Errorf("defaults = %+v", cfg)
	}
	if !cfg.IncludeBase() {
		t.Error("default group must include the base target")
	}
	if cfg.Workflow.SchemaVersion != "1" {
		t.Errorf("default schema_version = %q", cfg.Workflow.SchemaVersion)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bakegen.yml")
	if err := os.WriteFile(path, []byte("targets_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEffectiveIgnoreAlwaysHasBase(t *testing.T) {
	cfg := defaults()
	cfg.Ignore = []string{"django"}
	got := cfg.EffectiveIgnore()
	if !reflect.DeepEqual(got, []string{"django", "base"}) {
		t.Errorf("EffectiveIgnore = %v", got)
	}

	cfg.Ignore = []string{"base", "django"}
	got = cfg.EffectiveIgnore()
	if !reflect.DeepEqual(got, []string{"base", "django"}) {
		t.Errorf("EffectiveIgnore should not duplicate base: %v", got)
	}
}
