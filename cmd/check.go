package cmd

import (
	"github.com/spf13/cobra"

	"testindex/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the registration block is up to date",
		Long: `Recompute the registration block and compare it with the target file.
Exits non-zero and prints the pending diff when the block is stale, which
makes this command suitable as a CI guard.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			pipeline, err := pipelineArgsFromConfig()
			if err != nil {
				return err
			}

			return workflowFor(cmd).Check(domain.CheckArgs{PipelineArgs: pipeline})
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
