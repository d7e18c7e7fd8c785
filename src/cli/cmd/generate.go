package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/data-apis/bakegen/src/config"
	"github.com/data-apis/bakegen/src/matrix"
	"github.com/data-apis/bakegen/src/output"
	"github.com/data-apis/bakegen/src/versionsrc"
)

var (
	generateHCL    bool
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the buildx bake document for the target matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := versionSource(cfg)
		if err != nil {
			return err
		}

		res, err := matrix.Run(cmd.Context(), matrix.DirLister{}, src, runParams(cfg))
		if err != nil {
			return err
		}

		var data []byte
		if generateHCL {
			data = res.File.EncodeHCL()
		} else {
			data, err = res.File.EncodeJSON()
			if err != nil {
				return err
			}
		}

		dest := generateOutput
		if dest == "" {
			dest = cfg.Output
		}
		if dest == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}

		p := output.NewPrinter()
		p.Matrix(res)
		p.Wrote(dest, len(data))
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateHCL, "hcl", false, "emit docker-bake.hcl instead of JSON")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output path (overrides config; \"-\" for stdout)")
	rootCmd.AddCommand(generateCmd)
}

// runParams maps the loaded configuration onto the immutable per-run inputs.
func runParams(cfg *config.Config) matrix.Params {
	return matrix.Params{
		Root:         cfg.TargetsDir,
		BaseTarget:   cfg.BaseTarget,
		Ignore:       cfg.EffectiveIgnore(),
		PackageKey:   config.PackageKey,
		BaseKey:      cfg.BaseTarget,
		ImageRepo:    cfg.ImageRepo,
		CacheRepo:    cfg.CacheRepo,
		CacheMode:    matrix.CacheMode(cfg.CacheMode),
		ContextsRoot: cfg.TargetsDir,
		Dockerfile:   cfg.Dockerfile,
		GlobalArgs:   cfg.Args,
		IncludeBase:  cfg.IncludeBase(),
	}
}

// versionSource assembles the run's version source from config: package
// version first (git or plain file), then the optional pin file, then the
// per-target version files.
func versionSource(cfg *config.Config) (matrix.VersionSource, error) {
	var sources versionsrc.Mux

	if cfg.Versions.PackageFromGit {
		sources = append(sources, versionsrc.Git{Key: config.PackageKey, Root: "."})
	} else if cfg.Versions.PackageFile != "" {
		sources = append(sources, versionsrc.File{Key: config.PackageKey, Path: cfg.Versions.PackageFile})
	}

	if cfg.Versions.Pins != "" {
		pins, err := versionsrc.LoadPins(cfg.Versions.Pins)
		if err != nil {
			return nil, fmt.Errorf("loading version pins: %w", err)
		}
		sources = append(sources, pins)
	}

	if cfg.Versions.File != "" {
		sources = append(sources, versionsrc.Dir{Root: cfg.TargetsDir, File: cfg.Versions.File})
	}

	return sources, nil
}
