package cmd

import (
	"github.com/spf13/cobra"

	"resub.dev/pkg/resub/internal/domain"
	m "resub.dev/pkg/resub/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view REPORT",
		Short: "View a saved rename report",
		Long:  "View a report previously written by 'resub rename --report'.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Report: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
