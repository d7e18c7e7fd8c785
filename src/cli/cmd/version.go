package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/data-apis/bakegen/src/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bakegen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
