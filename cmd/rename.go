package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resub.dev/pkg/resub/internal/domain"
	m "resub.dev/pkg/resub/internal/model"
)

var assumeYesFlag bool
var reportFlag string

// renameCmd represents the rename command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [folder]",
		Short: "Rename files by replacing text in their names",
		Long: `Rename every file whose name contains the search text. The plan is shown
first and must be confirmed unless --yes is given. Files whose new name
already exists are skipped; a failing rename does not stop the others.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := workflow.Rename(cmd.Context(), domain.RenameArgs{
				Request:   buildRequest(args),
				AssumeYes: assumeYesFlag,
				Report:    m.Path(viper.GetString(reportConfigKey)),
			})

			return userError(cmd, err)
		},
	}

	configureRenameFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func configureRenameFlags(cmd *cobra.Command) {
	configureRequestFlags(cmd)

	cmd.Flags().BoolVarP(&assumeYesFlag, assumeYesFlagName, "y", false, "rename without asking for confirmation")

	cmd.Flags().StringVar(&reportFlag, reportFlagName, defaultReport, "write a YAML report of the outcomes to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}
