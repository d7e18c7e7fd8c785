package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/data-apis/bakegen/src/matrix"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the enumerated build targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := matrix.Enumerate(matrix.DirLister{}, cfg.TargetsDir, cfg.EffectiveIgnore())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
