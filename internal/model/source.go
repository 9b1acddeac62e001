// Package model defines the data structures shared by the rename workflow.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// IsBlank reports whether the path is empty or only whitespace.
func (p Path) IsBlank() bool {
	return strings.TrimSpace(string(p)) == ""
}

// RenameCandidate is a file eligible for inspection, prior to match-testing.
type RenameCandidate struct {
	OriginalPath Path
	Directory    Path
	Filename     string
}

// NewRenameCandidate splits path into its directory and file name.
func NewRenameCandidate(path Path) RenameCandidate {
	dir, name := filepath.Split(string(path))

	return RenameCandidate{
		OriginalPath: path,
		Directory:    Path(filepath.Clean(dir)),
		Filename:     name,
	}
}
