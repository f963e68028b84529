package cmd

import (
	"github.com/spf13/cobra"

	"github.com/justinlietz93/Plutonium/application"
	"github.com/justinlietz93/Plutonium/config"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the dependency version report",
	Long: `Analyze the configured directories, query each ecosystem's public
registry for the latest published versions and write a single Markdown
report to the configured output file.

One failing directory or environment never aborts the run; its section is
replaced by a failure notice and the remaining sections are still produced.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(service *application.ReportService, cfg *config.Config) error {
		return service.Run(cmd.Context(), cfg)
	})
}
