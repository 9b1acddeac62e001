package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "resub.dev/pkg/resub/internal/model"
)

// ErrUnsupportedReportVersion is returned when a report was written by a newer schema.
var ErrUnsupportedReportVersion = errors.New("unsupported report version")

// ReportStore persists rename reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.RenameReport) error
	LoadReport(path m.Path) (m.RenameReport, error)
}

type yamlReportStore struct{}

// NewReportStore returns a ReportStore that writes YAML documents.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

func (s *yamlReportStore) SaveReport(path m.Path, report m.RenameReport) error {
	if path.IsBlank() {
		return fmt.Errorf("report path is empty")
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("saved rename report", "path", path, "entries", len(report.Entries))

	return nil
}

func (s *yamlReportStore) LoadReport(path m.Path) (m.RenameReport, error) {
	// #nosec G304 - path is the report file explicitly named by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RenameReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RenameReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RenameReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	if report.Version > m.CurrentReportVersion {
		return m.RenameReport{}, fmt.Errorf("%w: %d", ErrUnsupportedReportVersion, report.Version)
	}

	return report, nil
}
