// Package domain holds the rename core: file enumeration, planning and commit.
package domain

import (
	"log/slog"
	"os"

	"resub.dev/pkg/resub/internal/adapter"
	m "resub.dev/pkg/resub/internal/model"
)

// FileEnumerator lists the candidate files of a folder.
type FileEnumerator interface {
	// List returns the regular files in folder, descending into every
	// subdirectory when recursive is true. Order is traversal order.
	List(folder m.Path, recursive bool) ([]m.Path, error)
}

type fileEnumerator struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewFileEnumerator constructs a FileEnumerator backed by fsAdapter.
func NewFileEnumerator(fsAdapter adapter.SourceFSAdapter) FileEnumerator {
	return &fileEnumerator{fsAdapter: fsAdapter}
}

func (e *fileEnumerator) List(folder m.Path, recursive bool) ([]m.Path, error) {
	if folder.IsBlank() {
		return nil, &m.ValidationError{Field: "folder", Err: m.ErrFolderNotSelected}
	}

	info, err := e.fsAdapter.FileInfo(folder)
	if err != nil {
		return nil, &m.FilesystemError{Op: "open", Path: folder, Err: err}
	}

	if !info.IsDir() {
		return nil, &m.FilesystemError{Op: "open", Path: folder, Err: m.ErrNotDirectory}
	}

	var (
		files    []m.Path
		rootPath *string
	)

	err = e.fsAdapter.Walk(folder, recursive, func(path string, info os.FileInfo, err error) error {
		// The first callback is the root, possibly under its resolved name.
		if rootPath == nil {
			rootPath = &path
		}

		isRoot := path == *rootPath

		if err != nil {
			if isRoot {
				return err
			}

			// Unreadable entries below the root are skipped, not fatal.
			slog.Debug("skipping unreadable entry", "path", path, "error", err)

			return nil
		}

		if isRoot || info.IsDir() {
			return nil
		}

		if e.isRegularFile(path, info) {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, &m.FilesystemError{Op: "list", Path: folder, Err: err}
	}

	slog.Debug("listed files", "folder", folder, "recursive", recursive, "count", len(files))

	return files, nil
}

// isRegularFile accepts regular files and symlinks that resolve to one.
func (e *fileEnumerator) isRegularFile(path string, info os.FileInfo) bool {
	if info.Mode().IsRegular() {
		return true
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := e.fsAdapter.FileInfo(m.Path(path))
	if err != nil {
		slog.Debug("skipping broken symlink", "path", path, "error", err)
		return false
	}

	return target.Mode().IsRegular()
}
