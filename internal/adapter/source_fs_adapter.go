// Package adapter contains the filesystem and storage adapters used by resub.
package adapter

import (
	"os"
	"path/filepath"

	m "resub.dev/pkg/resub/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when listing and renaming files, so the rename logic can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// FileInfo returns metadata for path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Lstat returns metadata for path without following symlinks.
	Lstat(path m.Path) (os.FileInfo, error)

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath m.Path) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on top of the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root, optionally descending into subdirectories.
// Symlinked directories are reported but never descended into. Paths passed to
// fn always start with root, even when root itself is a symlink.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)
	walkRoot := rootStr

	// filepath.Walk does not follow a symlinked root; walk the directory
	// behind it and map the paths back under root.
	if info, err := os.Lstat(rootStr); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(rootStr); err == nil {
			walkRoot = resolved
		}
	}

	return filepath.Walk(walkRoot, func(path string, info os.FileInfo, err error) error {
		isRoot := path == walkRoot

		if walkRoot != rootStr {
			if rel, relErr := filepath.Rel(walkRoot, path); relErr == nil {
				path = filepath.Join(rootStr, rel)
			}
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && !isRoot {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Lstat returns os.FileInfo metadata for the given path without following symlinks.
func (a *LocalSourceFSAdapter) Lstat(path m.Path) (os.FileInfo, error) {
	return os.Lstat(string(path))
}

// Rename renames oldPath to newPath.
func (a *LocalSourceFSAdapter) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}
