// Package cmd provides the root command and CLI setup for testindex.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"testindex/internal/adapter"
	"testindex/internal/controller"
	"testindex/internal/domain"
	m "testindex/internal/model"
)

// fixtureFS is the shared filesystem adapter behind every command.
var fixtureFS adapter.FixtureFSAdapter

// sourcesDirFlag points at the fixture tree root.
var sourcesDirFlag string

// targetFileFlag points at the file carrying the marker region.
var targetFileFlag string

// extensionFlag filters discovered files by extension.
var extensionFlag string

// normalizerFlag selects the name-normalization strategy.
var normalizerFlag string

// verboseFlag lowers the log level to debug.
var verboseFlag bool

// logFileFlag overrides the rotating log file location.
var logFileFlag string

func init() {
	// Flags are registered here rather than alongside the rootCmd variable
	// so the viper defaults from config.go are in place first.
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fixtureFS = adapter.NewLocalFixtureFSAdapter()
}

const rootLongDescription = `Testindex keeps a generated test-registration block in sync with a tree
of fixture files. It scans the sources directory, derives a nested
namespace from the directory layout, and rewrites the marker-delimited
region of the target file, leaving everything else untouched.

Repeated runs over an unchanged fixture set leave the target file
byte-identical.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd builds a root command with its flags configured, for tests
// that execute against a fresh command tree.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testindex",
		Short: "Test-registration block generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&sourcesDirFlag, sourcesFlagName, "s",
		viper.GetString(sourcesFlagName),
		"root directory of the fixture tree",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourcesFlagName), sourcesFlagName)

	cmd.PersistentFlags().StringVarP(
		&targetFileFlag, targetFlagName, "t",
		viper.GetString(targetFlagName),
		"file whose marker region is regenerated",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(targetFlagName), targetFlagName)

	cmd.PersistentFlags().StringVarP(
		&extensionFlag, extensionFlagName, "e",
		viper.GetString(extensionFlagName),
		"file extension identifying fixtures",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionFlagName), extensionFlagName)

	cmd.PersistentFlags().StringVar(
		&normalizerFlag, normalizerFlagName,
		viper.GetString(normalizerFlagName),
		"name normalization strategy (identity or strict)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(normalizerFlagName), normalizerFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file location (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// workflowFor builds a Workflow whose output follows the given command, so
// tests can capture it through cobra's out streams.
func workflowFor(cmd *cobra.Command) domain.Workflow {
	return domain.NewWorkflow(fixtureFS, controller.NewSimpleUI(cmd))
}

// pipelineArgsFromConfig resolves the shared pipeline configuration from
// viper (flags, config file, environment).
func pipelineArgsFromConfig() (domain.PipelineArgs, error) {
	normalize, err := domain.NormalizerByName(viper.GetString(normalizerFlagName))
	if err != nil {
		return domain.PipelineArgs{}, err
	}

	return domain.PipelineArgs{
		SourcesDir:  m.Path(viper.GetString(sourcesFlagName)),
		TargetFile:  m.Path(viper.GetString(targetFlagName)),
		Extension:   viper.GetString(extensionFlagName),
		Normalize:   normalize,
		Wrapper:     viper.GetString(wrapperConfigKey),
		MarkerLabel: viper.GetString(markerLabelConfigKey),
	}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
