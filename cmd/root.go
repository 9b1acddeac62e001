// Package cmd provides the root command and CLI setup for resub.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"resub.dev/pkg/resub/internal/adapter"
	"resub.dev/pkg/resub/internal/controller"
	"resub.dev/pkg/resub/internal/domain"
	m "resub.dev/pkg/resub/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var enumerator domain.FileEnumerator
var engine domain.RenameEngine
var workflow domain.Workflow
var ui controller.UI

// The request flags are never read from config or the environment; every
// run starts from an unchecked subfolder switch.
var searchFlag string
var replaceFlag string
var recursiveFlag bool

var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	enumerator = domain.NewFileEnumerator(fsAdapter)
	engine = domain.NewRenameEngine(fsAdapter)
	workflow = domain.NewWorkflow(
		reportStore,
		ui,
		enumerator,
		engine,
	)
}

const rootLongDescription = `resub renames files in a folder by replacing a literal piece of text in
their names. Matching is case sensitive and every occurrence is replaced.
A file is never renamed onto an existing name; such files are skipped.

Examples:
  resub preview ./docs -s report -t summary
  resub rename ./docs -s report -t summary --recursive
  resub ui ./docs`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resub",
		Short: "Batch rename files by search and replace",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a fresh root command with its persistent flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// configureRequestFlags registers the search, replace and recursive flags on
// the commands that build a rename request.
func configureRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&searchFlag, searchFlagName, "s", "", "text to search for in file names")
	cmd.Flags().StringVarP(&replaceFlag, replaceFlagName, "t", "", "replacement text (may be empty)")
	cmd.Flags().BoolVarP(&recursiveFlag, recursiveFlagName, "r", false, "include files in all subfolders")
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

// buildRequest turns the positional folder and the shared flags into a request.
func buildRequest(args []string) m.RenameRequest {
	folder := ""
	if len(args) > 0 {
		folder = args[0]
	}

	return m.RenameRequest{
		Folder:            m.Path(folder),
		SearchText:        searchFlag,
		ReplaceText:       replaceFlag,
		IncludeSubfolders: recursiveFlag,
	}
}

// userError stops cobra from printing usage for bad input; the message alone
// is enough.
func userError(cmd *cobra.Command, err error) error {
	if m.IsValidationError(err) {
		cmd.SilenceUsage = true
	}

	return err
}
