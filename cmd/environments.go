package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justinlietz93/Plutonium/domain"
)

var environmentsCmd = &cobra.Command{
	Use:   "environments",
	Short: "List the supported environments and their manifest files",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Supported environments:")
		for _, env := range domain.SupportedEnvironments {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", env, domain.ManifestFiles[env])
		}
	},
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}
