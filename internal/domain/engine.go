package domain

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"resub.dev/pkg/resub/internal/adapter"
	m "resub.dev/pkg/resub/internal/model"
)

// RenameEngine computes rename plans and applies them to the filesystem.
type RenameEngine interface {
	// Plan matches every file name against search and returns one Planned
	// entry per match, with all occurrences of search replaced.
	Plan(files []m.Path, search, replace string) ([]m.RenamePlanEntry, error)
	// Commit applies the Planned entries of plan in order and returns a copy
	// with updated outcomes. A failing entry never stops the batch.
	Commit(plan []m.RenamePlanEntry) []m.RenamePlanEntry
}

type renameEngine struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewRenameEngine constructs a RenameEngine that renames through fsAdapter.
func NewRenameEngine(fsAdapter adapter.SourceFSAdapter) RenameEngine {
	return &renameEngine{fsAdapter: fsAdapter}
}

func (e *renameEngine) Plan(files []m.Path, search, replace string) ([]m.RenamePlanEntry, error) {
	if search == "" {
		return nil, &m.ValidationError{Field: "search", Err: m.ErrEmptySearch}
	}

	plan := make([]m.RenamePlanEntry, 0, len(files))

	for _, file := range files {
		candidate := m.NewRenameCandidate(file)
		if !strings.Contains(candidate.Filename, search) {
			continue
		}

		newFilename := strings.ReplaceAll(candidate.Filename, search, replace)
		plan = append(plan, m.RenamePlanEntry{
			Candidate:   candidate,
			NewFilename: newFilename,
			NewPath:     m.Path(filepath.Join(string(candidate.Directory), newFilename)),
			Outcome:     m.Planned,
		})
	}

	return plan, nil
}

func (e *renameEngine) Commit(plan []m.RenamePlanEntry) []m.RenamePlanEntry {
	result := make([]m.RenamePlanEntry, len(plan))
	copy(result, plan)

	for i := range result {
		entry := &result[i]
		if entry.Outcome != m.Planned {
			continue
		}

		e.apply(entry)

		if entry.Outcome == m.Failed {
			slog.Error("rename failed", "from", entry.Candidate.OriginalPath, "to", entry.NewPath, "error", entry.Err)
			continue
		}

		slog.Info("rename", "from", entry.Candidate.OriginalPath, "to", entry.NewPath, "outcome", entry.Outcome.String())
	}

	return result
}

func (e *renameEngine) apply(entry *m.RenamePlanEntry) {
	if !isValidFilename(entry.NewFilename) {
		markFailed(entry, &m.FilesystemError{Op: "rename", Path: entry.NewPath, Err: m.ErrInvalidTargetName})
		return
	}

	// Lstat so that a dangling symlink at the target still counts as existing.
	_, err := e.fsAdapter.Lstat(entry.NewPath)
	if err == nil {
		entry.Outcome = m.SkippedExists
		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		markFailed(entry, &m.FilesystemError{Op: "stat", Path: entry.NewPath, Err: err})
		return
	}

	if err := e.fsAdapter.Rename(entry.Candidate.OriginalPath, entry.NewPath); err != nil {
		markFailed(entry, &m.FilesystemError{Op: "rename", Path: entry.Candidate.OriginalPath, Err: err})
		return
	}

	entry.Outcome = m.Renamed
}

func markFailed(entry *m.RenamePlanEntry, err error) {
	entry.Outcome = m.Failed
	entry.Err = err
}

// isValidFilename rejects names that would not stay in the original directory.
func isValidFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	return !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}
