package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"resub.dev/pkg/resub/internal/controller"
	m "resub.dev/pkg/resub/internal/model"
)

type interactiveRunner interface {
	Run(ctx context.Context, defaults m.RenameRequest) error
}

// newInteractive builds the interactive front end; replaced in tests.
var newInteractive = func(session controller.Session, in io.Reader, out io.Writer) interactiveRunner {
	return controller.NewTUI(session, in, out)
}

// uiCmd represents the ui command.
var uiCmd = newUICmd()

func newUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui [folder]",
		Short: "Open the interactive rename form",
		Long: `Open a terminal form with folder, search and replace fields and a
subfolders switch. Ctrl+P previews, Ctrl+R renames after confirmation.
The folder argument and flags pre-fill the form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := newInteractive(workflow, cmd.InOrStdin(), cmd.OutOrStdout())
			return runner.Run(cmd.Context(), buildRequest(args))
		},
	}

	configureRequestFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
