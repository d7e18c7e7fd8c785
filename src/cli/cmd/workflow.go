package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/data-apis/bakegen/src/config"
	"github.com/data-apis/bakegen/src/matrix"
	"github.com/data-apis/bakegen/src/workflow"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Workflow name derivation and parsing",
}

var workflowNameCmd = &cobra.Command{
	Use:   "name <target>",
	Short: "Derive the workflow name for one target at current versions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		src, err := versionSource(cfg)
		if err != nil {
			return err
		}
		snap, err := matrix.LoadSnapshot(cmd.Context(), src, config.PackageKey, cfg.BaseTarget, []string{target})
		if err != nil {
			return err
		}
		resolver, err := matrix.NewResolver(snap.Package, snap.Base)
		if err != nil {
			return err
		}

		tag := resolver.VersionTag(snap.Targets[target])
		fmt.Fprintln(cmd.OutOrStdout(), workflow.Format(target, tag, cfg.Workflow.SchemaVersion))
		return nil
	},
}

var workflowParseCmd = &cobra.Command{
	Use:   "parse <workflow-name>",
	Short: "Recover the target name from a workflow name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := workflow.ParseLabel(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), target)
		return nil
	},
}

func init() {
	workflowCmd.AddCommand(workflowNameCmd)
	workflowCmd.AddCommand(workflowParseCmd)
	rootCmd.AddCommand(workflowCmd)
}
