// Package controller provides the presentation layer for rename previews and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "resub.dev/pkg/resub/internal/model"
)

// UI defines how the workflow reports plans, asks for confirmation and shows
// outcomes. Implementations can use different output methods.
type UI interface {
	DisplayPlan(ctx context.Context, req m.RenameRequest, plan []m.RenamePlanEntry) error
	Confirm(ctx context.Context, prompt string) (bool, error)
	DisplayCommit(ctx context.Context, req m.RenameRequest, plan []m.RenamePlanEntry) error
	DisplayRemaining(ctx context.Context, remaining int) error
	DisplayReport(ctx context.Context, report m.RenameReport) error
}

// Session is the call boundary between an interactive front end and the
// rename core. Each call runs to completion before returning.
type Session interface {
	PlanRequest(req m.RenameRequest) ([]m.RenamePlanEntry, error)
	CommitPlan(plan []m.RenamePlanEntry) []m.RenamePlanEntry
}

// NewUI returns the line-oriented UI bound to cmd's streams. Styling is only
// enabled when the output is a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
