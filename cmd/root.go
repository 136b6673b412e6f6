// Package cmd provides the root command and CLI setup for staticscan.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/adapter"
	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/controller"
	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/domain"
	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore *adapter.CSVReportStore
var locator domain.MethodBodyLocator
var engine domain.RuleEngine
var scanner domain.Scanner
var ui controller.UI

// reportOutputFlag is a root-level flag shared by commands that read/write reports.
var reportOutputFlag string

// reportFormatFlag selects the report serialization (csv or sarif).
var reportFormatFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewCSVReportStore()
	locator = domain.NewMethodBodyLocator()
	engine = domain.NewRuleEngine()
	scanner = domain.NewScanner(fsAdapter, ui, locator, engine, adapter.NewReportStore)
}

const rootLongDescription = `Staticscan walks a Unity project tree, locates the bodies of per-frame
callbacks (Update, FixedUpdate, LateUpdate) and flags textual patterns
that correlate with known performance and correctness pitfalls in a
real-time update loop: expensive lookups, allocation-heavy LINQ,
per-frame logging, unmatched event subscriptions, coroutines without a
stop path and missing physics-safe calls.

Findings are written as a flat report (file, line, severity, rule,
detail) for CI gating and review tooling.`

const scanLongDescription = `Scan the given root (default: current directory) and write the findings
report. Paths containing Library or Temp are always skipped.`

const listLongDescription = `Scan the given root (default: current directory) and print per-file
finding counts without writing a report.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "staticscan",
		Short: "Unity per-frame pitfall scanner",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportOutputFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output path for the findings report",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&reportFormatFlag, formatFlagName, "f",
			viper.GetString(formatFlagName),
			"report format: csv or sarif",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
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

// parseRoot resolves the optional positional root argument.
func parseRoot(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}
