package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".bakegen.yml"

// PackageKey is the version-source key the global package version is read
// under.
const PackageKey = "package"

// Config is the top-level bakegen configuration.
type Config struct {
	// TargetsDir is the directory whose immediate subdirectories are the
	// build targets.
	TargetsDir string `yaml:"targets_dir"`

	// BaseTarget names the shared base image every other target inherits
	// from. Its directory lives under TargetsDir too, but it is excluded
	// from leaf enumeration.
	BaseTarget string `yaml:"base_target"`

	// Ignore lists target directories excluded from the matrix
	// (deprecated targets, scratch dirs). The base target is always
	// excluded regardless.
	Ignore []string `yaml:"ignore"`

	// ImageRepo is the image reference prefix, e.g.
	// "ghcr.io/data-apis/record-api".
	ImageRepo string `yaml:"image_repo"`

	// CacheRepo is the registry location layer cache is exchanged through.
	// Empty disables cache directives.
	CacheRepo string `yaml:"cache_repo"`

	// CacheMode is "max" (all intermediate layers) or "none".
	CacheMode string `yaml:"cache_mode"`

	// Dockerfile is the dockerfile name within each target directory.
	Dockerfile string `yaml:"dockerfile"`

	// Args are extra build args applied to every target.
	Args map[string]string `yaml:"args,omitempty"`

	// GroupIncludesBase controls whether the default group lists the base
	// target. Default: true.
	GroupIncludesBase *bool `yaml:"group_includes_base,omitempty"`

	// Output is the path the bake document is written to.
	Output string `yaml:"output"`

	Versions VersionsConfig `yaml:"versions"`
	Workflow WorkflowConfig `yaml:"workflow"`
}

// VersionsConfig says where version strings come from.
type VersionsConfig struct {
	// File is the version file name inside each target directory.
	File string `yaml:"file"`

	// PackageFile is a plain file holding the global package version.
	PackageFile string `yaml:"package_file"`

	// PackageFromGit resolves the package version from the repository's
	// highest stable release tag instead of PackageFile.
	PackageFromGit bool `yaml:"package_from_git"`

	// Pins is an optional TOML pin file consulted before the per-target
	// version files.
	Pins string `yaml:"pins"`
}

// WorkflowConfig holds the workflow-name namespace settings.
type WorkflowConfig struct {
	// SchemaVersion is appended to every workflow name; bump it to force a
	// disjoint name namespace after a workflow template change.
	SchemaVersion string `yaml:"schema_version"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		TargetsDir: ".",
		BaseTarget: "base",
		CacheMode:  "max",
		Dockerfile: "Dockerfile",
		Output:     "docker-bake.json",
		Versions: VersionsConfig{
			File:        "VERSION",
			PackageFile: "VERSION",
		},
		Workflow: WorkflowConfig{SchemaVersion: "1"},
	}
}

// EffectiveIgnore returns the configured ignore set with the base target
// folded in. Enumeration must never surface the base as a leaf.
func (c *Config) EffectiveIgnore() []string {
	out := append([]string(nil), c.Ignore...)
	for _, name := range out {
		if name == c.BaseTarget {
			return out
		}
	}
	return append(out, c.BaseTarget)
}

// IncludeBase reports whether the default group lists the base target.
func (c *Config) IncludeBase() bool {
	if c.GroupIncludesBase == nil {
		return true
	}
	return *c.GroupIncludesBase
}
