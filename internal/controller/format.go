package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	m "resub.dev/pkg/resub/internal/model"
)

const arrow = "  →  "

// displayName returns the path of the candidate relative to the selected
// folder, so nested matches stay distinguishable in recursive runs.
func displayName(folder m.Path, entry m.RenamePlanEntry) string {
	rel, err := filepath.Rel(string(folder), string(entry.Candidate.OriginalPath))
	if err != nil || strings.HasPrefix(rel, "..") {
		return entry.Candidate.Filename
	}

	return rel
}

func planLine(folder m.Path, entry m.RenamePlanEntry) string {
	return displayName(folder, entry) + arrow + entry.NewFilename
}

func planCountLine(n int) string {
	return fmt.Sprintf("%d file(s) would be renamed.", n)
}

// commitLine describes an entry that was not renamed. ok is false for
// entries that need no mention.
func commitLine(folder m.Path, entry m.RenamePlanEntry) (line string, ok bool) {
	switch entry.Outcome {
	case m.SkippedExists:
		return "Skipped (exists): " + entry.NewFilename, true
	case m.Failed:
		return fmt.Sprintf("Failed: %s: %v", planLine(folder, entry), entry.Err), true
	default:
		return "", false
	}
}

func renamedCountLine(n int) string {
	return fmt.Sprintf("%d file(s) renamed.", n)
}

func remainingLine(n int) string {
	return fmt.Sprintf("%d file(s) still match the search text.", n)
}
