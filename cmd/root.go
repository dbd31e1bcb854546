// Package cmd provides the root command and CLI setup for tidyvue.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"tidyvue.dev/pkg/tidyvue/internal/adapter"
	"tidyvue.dev/pkg/tidyvue/internal/controller"
	"tidyvue.dev/pkg/tidyvue/internal/domain"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var templateAdapter adapter.TemplateAdapter
var reportStore adapter.ReportStore
var streamer domain.SourceStreamer
var formatter domain.Formatter
var applier domain.Applier
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noCacheFlag disables incremental caching when set.
var noCacheFlag bool

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// logFileFlag overrides the log file location.
var logFileFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	templateAdapter = adapter.NewLocalTemplateAdapter()
	reportStore = adapter.NewLocalReportStore()
	streamer = domain.NewSourceStreamer(sourceFSAdapter)
	formatter = domain.NewFormatter(sourceFSAdapter, templateAdapter)
	applier = domain.NewApplier(sourceFSAdapter)
	workflow = domain.NewWorkflow(
		streamer,
		formatter,
		applier,
		reportStore,
		ui,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./pages  scan multiple directories`

const rootLongDescription = `Tidyvue is a template attribute formatter for Vue single-file components
and plain markup. It normalizes class lists, directive shorthand and
attribute ordering inside template blocks, without touching scripts,
styles or anything outside the element tags it rewrites.

` + pathPatternsHelp

const checkLongDescription = `Check whether template attribute blocks are normalized (default: current directory).

Exits with a non-zero status when any file needs formatting.

` + pathPatternsHelp

const fmtLongDescription = `Rewrite template attribute blocks in place for the given paths
(default: current directory).

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	ensureConfig()

	cmd := &cobra.Command{
		Use:   "tidyvue",
		Short: "Vue template attribute formatter",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for formatting reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noCacheFlag, noCacheFlagName, viper.GetBool(noCacheFlagName), "disable cached incremental runs (re-check everything)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("log-file"), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("verbose"), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
