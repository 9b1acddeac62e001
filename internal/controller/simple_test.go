package controller

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "resub.dev/pkg/resub/internal/model"
)

func newTestUI(input string) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader(input))

	return NewSimpleUI(cmd, false), &buf
}

func plannedEntry(folder, oldName, newName string) m.RenamePlanEntry {
	oldPath := m.Path(filepath.Join(folder, oldName))

	return m.RenamePlanEntry{
		Candidate:   m.NewRenameCandidate(oldPath),
		NewFilename: filepath.Base(newName),
		NewPath:     m.Path(filepath.Join(folder, newName)),
		Outcome:     m.Planned,
	}
}

func TestSimpleUI_DisplayPlan(t *testing.T) {
	ui, buf := newTestUI("")
	req := m.RenameRequest{Folder: "/data", SearchText: "report", ReplaceText: "summary", IncludeSubfolders: true}
	plan := []m.RenamePlanEntry{
		plannedEntry("/data", "report.txt", "summary.txt"),
		plannedEntry("/data", filepath.Join("sub", "report_old.txt"), filepath.Join("sub", "summary_old.txt")),
	}

	err := ui.DisplayPlan(context.Background(), req, plan)
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "report.txt  →  summary.txt")
	assert.Contains(t, got, filepath.Join("sub", "report_old.txt")+"  →  summary_old.txt")
	assert.Contains(t, got, "2 file(s) would be renamed.")
}

func TestSimpleUI_DisplayPlan_Empty(t *testing.T) {
	ui, buf := newTestUI("")

	err := ui.DisplayPlan(context.Background(), m.RenameRequest{Folder: "/data"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n0 file(s) would be renamed.\n", buf.String())
}

func TestSimpleUI_DisplayPlan_CancelledContext(t *testing.T) {
	ui, buf := newTestUI("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayPlan(ctx, m.RenameRequest{}, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestSimpleUI_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "YES\n", true},
		{"no", "n\n", false},
		{"blank line", "\n", false},
		{"other text", "sure\n", false},
		{"end of input", "", false},
		{"yes without newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestUI(tt.input)

			got, err := ui.Confirm(context.Background(), "Really rename files?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Really rename files? [y/N]: ", buf.String())
		})
	}
}

func TestSimpleUI_DisplayCommit(t *testing.T) {
	ui, buf := newTestUI("")
	req := m.RenameRequest{Folder: "/data", SearchText: "report", ReplaceText: "summary"}

	renamed := plannedEntry("/data", "report.txt", "summary.txt")
	renamed.Outcome = m.Renamed

	skipped := plannedEntry("/data", "report_a.txt", "summary_a.txt")
	skipped.Outcome = m.SkippedExists

	failed := plannedEntry("/data", "report_b.txt", "summary_b.txt")
	failed.Outcome = m.Failed
	failed.Err = errors.New("permission denied")

	err := ui.DisplayCommit(context.Background(), req, []m.RenamePlanEntry{renamed, skipped, failed})
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "Skipped (exists): summary_a.txt")
	assert.Contains(t, got, "Failed: report_b.txt  →  summary_b.txt: permission denied")
	assert.NotContains(t, got, "Skipped (exists): summary.txt")
	assert.Contains(t, strings.ToUpper(got), "OUTCOME")
	assert.Contains(t, got, "skipped (exists)")
	assert.Contains(t, strings.ToUpper(got), "TOTAL")
	assert.Contains(t, got, "1 file(s) renamed.")
}

func TestSimpleUI_DisplayRemaining(t *testing.T) {
	ui, buf := newTestUI("")

	require.NoError(t, ui.DisplayRemaining(context.Background(), 3))
	assert.Equal(t, "3 file(s) still match the search text.\n", buf.String())
}

func TestSimpleUI_DisplayRemaining_CancelledContext(t *testing.T) {
	ui, buf := newTestUI("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayRemaining(ctx, 3), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, buf := newTestUI("")
	report := m.RenameReport{
		Version:   m.CurrentReportVersion,
		CreatedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		Request: m.ReportRequest{
			Folder:            "/data",
			SearchText:        "report",
			ReplaceText:       "summary",
			IncludeSubfolders: true,
		},
		Entries: []m.ReportEntry{
			{OldPath: "/data/report.txt", NewPath: "/data/summary.txt", Outcome: "renamed"},
			{OldPath: "/data/report_b.txt", NewPath: "/data/summary_b.txt", Outcome: "failed", Error: "denied"},
		},
	}

	err := ui.DisplayReport(context.Background(), report)
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "Report from 2024-05-06 07:08:09 UTC")
	assert.Contains(t, got, "Folder: /data (including subfolders)")
	assert.Contains(t, got, `Replace "report" with "summary"`)
	assert.Contains(t, got, "/data/summary.txt")
	assert.Contains(t, got, "denied")
	assert.Contains(t, strings.ToUpper(got), "RENAMED 1")
}

func TestSimpleUI_ColorDisabledWritesPlainText(t *testing.T) {
	ui, _ := newTestUI("")
	assert.Equal(t, "plain", ui.paint(failedStyle, "plain"))
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
