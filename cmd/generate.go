package cmd

import (
	"github.com/spf13/cobra"

	"testindex/internal/domain"
)

var generateDryRunFlag bool

const generateLongDescription = `Regenerate the registration block of the target file from the current
fixture tree. The block is spliced between the begin and end marker lines;
everything outside the markers is preserved byte-for-byte. When the block
is already current no write happens at all.`

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the registration block in the target file",
		Long:  generateLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			pipeline, err := pipelineArgsFromConfig()
			if err != nil {
				return err
			}

			return workflowFor(cmd).Generate(domain.GenerateArgs{
				PipelineArgs: pipeline,
				DryRun:       generateDryRunFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&generateDryRunFlag, "dry-run", false, "print the pending diff instead of writing the target file")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
