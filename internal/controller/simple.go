package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "resub.dev/pkg/resub/internal/model"
)

var (
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// SimpleUI implements UI using the cobra command's input and output streams.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
	in    *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

// DisplayPlan prints one "old → new" line per entry and a trailing count.
func (s *SimpleUI) DisplayPlan(ctx context.Context, req m.RenameRequest, plan []m.RenamePlanEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, entry := range plan {
		if err := s.outPrintf("%s\n", planLine(req.Folder, entry)); err != nil {
			return err
		}
	}

	return s.outPrintf("\n%s\n", s.paint(summaryStyle, planCountLine(len(plan))))
}

// Confirm asks a yes/no question on the command's input. Anything other than
// "y" or "yes" is a refusal, including end of input.
func (s *SimpleUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := s.outPrintf("%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	if s.in == nil {
		s.in = bufio.NewReader(s.cmd.InOrStdin())
	}

	answer, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// DisplayCommit prints skipped and failed entries followed by a summary table.
func (s *SimpleUI) DisplayCommit(ctx context.Context, req m.RenameRequest, plan []m.RenamePlanEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, entry := range plan {
		line, ok := commitLine(req.Folder, entry)
		if !ok {
			continue
		}

		style := skippedStyle
		if entry.Outcome == m.Failed {
			style = failedStyle
		}

		if err := s.outPrintf("%s\n", s.paint(style, line)); err != nil {
			return err
		}
	}

	summary := m.Summarize(plan)
	if err := s.outPrintf("\n%s", renderSummaryTable(summary)); err != nil {
		return err
	}

	return s.outPrintf("%s\n", s.paint(summaryStyle, renamedCountLine(summary.Renamed)))
}

// DisplayRemaining prints how many files still match after a commit.
func (s *SimpleUI) DisplayRemaining(ctx context.Context, remaining int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.outPrintf("%s\n", remainingLine(remaining))
}

// DisplayReport prints a saved rename report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RenameReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	scope := "top level only"
	if report.Request.IncludeSubfolders {
		scope = "including subfolders"
	}

	header := fmt.Sprintf("Report from %s\nFolder: %s (%s)\nReplace %q with %q\n\n",
		report.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		report.Request.Folder, scope,
		report.Request.SearchText, report.Request.ReplaceText)

	if err := s.outPrintf("%s", header); err != nil {
		return err
	}

	return s.outPrintf("%s", renderReportTable(report))
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{m.Renamed.String(), fmt.Sprintf("%d", summary.Renamed)})
	table.Append([]string{m.SkippedExists.String(), fmt.Sprintf("%d", summary.Skipped)})
	table.Append([]string{m.Failed.String(), fmt.Sprintf("%d", summary.Failed)})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", summary.Total())})

	table.Render()

	return tableBuffer.String()
}

func renderReportTable(report m.RenameReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Old", "New", "Outcome", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	renamed := 0

	for _, entry := range report.Entries {
		if entry.Outcome == m.Renamed.String() {
			renamed++
		}

		table.Append([]string{entry.OldPath, entry.NewPath, entry.Outcome, entry.Error})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Entries %d", len(report.Entries)),
		"",
		fmt.Sprintf("Renamed %d", renamed),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) paint(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}

// outPrintf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) outPrintf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
