package model

// RenameRequest holds the inputs of a single preview or rename run.
type RenameRequest struct {
	Folder            Path
	SearchText        string
	ReplaceText       string
	IncludeSubfolders bool
}

// Validate checks the request before any filesystem access happens.
func (r RenameRequest) Validate() error {
	if r.Folder.IsBlank() {
		return &ValidationError{Field: "folder", Err: ErrFolderNotSelected}
	}

	if r.SearchText == "" {
		return &ValidationError{Field: "search", Err: ErrEmptySearch}
	}

	return nil
}

// Outcome is the state of a single plan entry.
type Outcome int

const (
	// Planned means the entry was computed but not yet applied.
	Planned Outcome = iota
	// Renamed means the file was renamed on disk.
	Renamed
	// SkippedExists means the target name already existed, nothing was touched.
	SkippedExists
	// Failed means the rename was attempted or rejected and Err holds the reason.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Planned:
		return "planned"
	case Renamed:
		return "renamed"
	case SkippedExists:
		return "skipped (exists)"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the outcome can no longer change.
func (o Outcome) IsTerminal() bool {
	return o != Planned
}

// RenamePlanEntry pairs a candidate with the name it will be renamed to.
type RenamePlanEntry struct {
	Candidate   RenameCandidate
	NewFilename string
	NewPath     Path
	Outcome     Outcome
	Err         error // set only when Outcome is Failed
}

// Summary counts plan entries by outcome.
type Summary struct {
	Planned int
	Renamed int
	Skipped int
	Failed  int
}

// Total returns the number of counted entries.
func (s Summary) Total() int {
	return s.Planned + s.Renamed + s.Skipped + s.Failed
}

// Summarize counts the outcomes in plan.
func Summarize(plan []RenamePlanEntry) Summary {
	var s Summary

	for _, entry := range plan {
		switch entry.Outcome {
		case Planned:
			s.Planned++
		case Renamed:
			s.Renamed++
		case SkippedExists:
			s.Skipped++
		case Failed:
			s.Failed++
		}
	}

	return s
}
