package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var nameRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	if cfg.TargetsDir == "" {
		errs = append(errs, "targets_dir: is required")
	}

	if cfg.BaseTarget == "" {
		errs = append(errs, "base_target: is required")
	} else if !nameRe.MatchString(cfg.BaseTarget) {
		errs = append(errs, fmt.Sprintf("base_target: %q is not a valid target name (lowercase alphanumeric with interior hyphens)", cfg.BaseTarget))
	}

	switch cfg.CacheMode {
	case "none", "max":
	default:
		errs = append(errs, fmt.Sprintf("cache_mode: must be none or max, got %q", cfg.CacheMode))
	}

	if cfg.Dockerfile == "" {
		errs = append(errs, "dockerfile: is required")
	}

	if cfg.Output == "" {
		errs = append(errs, "output: is required")
	}

	if cfg.Workflow.SchemaVersion == "" {
		errs = append(errs, "workflow.schema_version: is required")
	} else if strings.Contains(cfg.Workflow.SchemaVersion, "-") || strings.Contains(cfg.Workflow.SchemaVersion, ".") {
		errs = append(errs, fmt.Sprintf("workflow.schema_version: %q must be a single token without separators", cfg.Workflow.SchemaVersion))
	}

	if cfg.Versions.File == "" && cfg.Versions.Pins == "" {
		errs = append(errs, "versions: either file or pins must be set")
	}
	if cfg.Versions.PackageFromGit && cfg.Versions.PackageFile != "" {
		warnings = append(warnings, "versions: package_from_git set, package_file is ignored")
	}
	if !cfg.Versions.PackageFromGit && cfg.Versions.PackageFile == "" && cfg.Versions.Pins == "" {
		errs = append(errs, "versions: no package version source (set package_file, package_from_git, or pins)")
	}

	if cfg.CacheRepo == "" {
		warnings = append(warnings, "cache_repo: not set, builds will not exchange layer cache")
	}

	for k := range cfg.Args {
		if k == "FROM" || k == "PACKAGE_VERSION" {
			errs = append(errs, fmt.Sprintf("args: %q is reserved for the generator", k))
		}
	}

	if len(errs) > 0 {
		return warnings, errors.New("invalid configuration:\n  " + strings.Join(errs, "\n  "))
	}
	return warnings, nil
}
