package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resub.dev/pkg/resub/internal/adapter"
	"resub.dev/pkg/resub/internal/controller"
	m "resub.dev/pkg/resub/internal/model"
)

// PreviewArgs contains the arguments for a dry-run preview.
type PreviewArgs struct {
	Request m.RenameRequest
}

// RenameArgs contains the arguments for applying renames.
type RenameArgs struct {
	Request   m.RenameRequest
	AssumeYes bool   // skip the confirmation prompt
	Report    m.Path // optional report file written after commit
}

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the user-facing rename operations.
type Workflow interface {
	controller.Session
	Preview(ctx context.Context, args PreviewArgs) error
	Rename(ctx context.Context, args RenameArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	FileEnumerator
	RenameEngine
	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	enumerator FileEnumerator,
	engine RenameEngine,
) Workflow {
	return &workflow{
		ReportStore:    reportStore,
		UI:             ui,
		FileEnumerator: enumerator,
		RenameEngine:   engine,
		now:            time.Now,
	}
}

// PlanRequest validates req, lists its folder and computes the plan.
// Validation happens before the filesystem is touched.
func (w *workflow) PlanRequest(req m.RenameRequest) ([]m.RenamePlanEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	files, err := w.List(req.Folder, req.IncludeSubfolders)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	plan, err := w.Plan(files, req.SearchText, req.ReplaceText)
	if err != nil {
		return nil, fmt.Errorf("plan renames: %w", err)
	}

	slog.Info("planned renames",
		"folder", req.Folder,
		"recursive", req.IncludeSubfolders,
		"files", len(files),
		"matches", len(plan),
	)

	return plan, nil
}

// CommitPlan applies plan to the filesystem.
func (w *workflow) CommitPlan(plan []m.RenamePlanEntry) []m.RenamePlanEntry {
	committed := w.Commit(plan)
	summary := m.Summarize(committed)

	slog.Info("committed renames",
		"renamed", summary.Renamed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)

	return committed
}

func (w *workflow) Preview(ctx context.Context, args PreviewArgs) error {
	plan, err := w.PlanRequest(args.Request)
	if err != nil {
		slog.Error("Failed to plan preview", "error", err)
		return err
	}

	if err := w.DisplayPlan(ctx, args.Request, plan); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Rename(ctx context.Context, args RenameArgs) error {
	plan, err := w.PlanRequest(args.Request)
	if err != nil {
		slog.Error("Failed to plan rename", "error", err)
		return err
	}

	if err := w.DisplayPlan(ctx, args.Request, plan); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if len(plan) == 0 {
		return nil
	}

	if !args.AssumeYes {
		confirmed, err := w.Confirm(ctx, "Really rename files?")
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}

		if !confirmed {
			slog.Info("rename cancelled by user", "planned", len(plan))
			return nil
		}
	}

	committed := w.CommitPlan(plan)

	if err := w.DisplayCommit(ctx, args.Request, committed); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if !args.Report.IsBlank() {
		report := m.NewRenameReport(args.Request, committed, w.now())
		if err := w.SaveReport(args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	remaining, err := w.PlanRequest(args.Request)
	if err != nil {
		return fmt.Errorf("re-plan after rename: %w", err)
	}

	if err := w.DisplayRemaining(ctx, len(remaining)); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Report, "error", err)
		return err
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
