package cmd

import (
	"github.com/spf13/cobra"

	"resub.dev/pkg/resub/internal/domain"
)

// previewCmd represents the preview command.
var previewCmd = newPreviewCmd()

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [folder]",
		Short: "Show which files would be renamed",
		Long: `List every file whose name contains the search text, together with the
name it would get. Nothing on disk is changed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := workflow.Preview(cmd.Context(), domain.PreviewArgs{Request: buildRequest(args)})
			return userError(cmd, err)
		},
	}

	configureRequestFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
