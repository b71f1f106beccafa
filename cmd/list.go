package cmd

import (
	"github.com/spf13/cobra"

	"testindex/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered fixtures and their namespaces",
		Long: `Discover the fixture files and print the namespace each one would be
registered under, without touching the target file.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			pipeline, err := pipelineArgsFromConfig()
			if err != nil {
				return err
			}

			return workflowFor(cmd).List(domain.ListArgs{PipelineArgs: pipeline})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
