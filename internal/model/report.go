package model

import "time"

// CurrentReportVersion is the schema version written into new reports.
const CurrentReportVersion = 1

// RenameReport is the persisted record of a committed rename run.
type RenameReport struct {
	Version   int           `yaml:"version"`
	CreatedAt time.Time     `yaml:"created_at"`
	Request   ReportRequest `yaml:"request"`
	Entries   []ReportEntry `yaml:"entries"`
}

// ReportRequest mirrors RenameRequest with serialisable field names.
type ReportRequest struct {
	Folder            string `yaml:"folder"`
	SearchText        string `yaml:"search"`
	ReplaceText       string `yaml:"replace"`
	IncludeSubfolders bool   `yaml:"include_subfolders"`
}

// ReportEntry is one line of a rename report.
type ReportEntry struct {
	OldPath string `yaml:"old_path"`
	NewPath string `yaml:"new_path"`
	Outcome string `yaml:"outcome"`
	Error   string `yaml:"error,omitempty"`
}

// NewRenameReport builds a report from a request and its committed plan.
func NewRenameReport(req RenameRequest, plan []RenamePlanEntry, now time.Time) RenameReport {
	entries := make([]ReportEntry, 0, len(plan))

	for _, entry := range plan {
		re := ReportEntry{
			OldPath: string(entry.Candidate.OriginalPath),
			NewPath: string(entry.NewPath),
			Outcome: entry.Outcome.String(),
		}

		if entry.Err != nil {
			re.Error = entry.Err.Error()
		}

		entries = append(entries, re)
	}

	return RenameReport{
		Version:   CurrentReportVersion,
		CreatedAt: now.UTC(),
		Request: ReportRequest{
			Folder:            string(req.Folder),
			SearchText:        req.SearchText,
			ReplaceText:       req.ReplaceText,
			IncludeSubfolders: req.IncludeSubfolders,
		},
		Entries: entries,
	}
}
