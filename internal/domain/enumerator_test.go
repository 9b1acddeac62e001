package domain

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resub.dev/pkg/resub/internal/adapter"
	adaptermocks "resub.dev/pkg/resub/internal/adapter/mocks"
	m "resub.dev/pkg/resub/internal/model"
)

func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "report.txt"), "r")
	writeFile(t, filepath.Join(root, "notes.md"), "n")
	writeFile(t, filepath.Join(root, "sub", "report_old.txt"), "o")
	writeFile(t, filepath.Join(root, "sub", "deep", "deeper", "report_final.txt"), "f")

	return root
}

func TestFileEnumerator_List(t *testing.T) {
	enumerator := NewFileEnumerator(adapter.NewLocalSourceFSAdapter())

	t.Run("non recursive returns only direct files", func(t *testing.T) {
		root := newTree(t)

		files, err := enumerator.List(m.Path(root), false)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"notes.md", "report.txt"}, baseNames(files))

		for _, f := range files {
			assert.Equal(t, root, filepath.Dir(string(f)), "non-recursive listing returned %s", f)
		}
	})

	t.Run("recursive returns files from every depth", func(t *testing.T) {
		root := newTree(t)

		files, err := enumerator.List(m.Path(root), true)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]string{"notes.md", "report.txt", "report_old.txt", "report_final.txt"},
			baseNames(files))
		assert.Contains(t, files, m.Path(filepath.Join(root, "sub", "deep", "deeper", "report_final.txt")))
	})

	t.Run("directories are never listed", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "report_dir"), 0o755))

		files, err := enumerator.List(m.Path(root), true)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := enumerator.List(m.Path(filepath.Join(t.TempDir(), "missing")), false)
		require.ErrorIs(t, err, fs.ErrNotExist)

		var fsErr *m.FilesystemError
		require.ErrorAs(t, err, &fsErr)
	})

	t.Run("folder is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		writeFile(t, path, "x")

		_, err := enumerator.List(m.Path(path), false)
		require.ErrorIs(t, err, m.ErrNotDirectory)
	})
}

func TestFileEnumerator_EmptyFolderIsValidationError(t *testing.T) {
	// No expectations: any filesystem access fails the test.
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	enumerator := NewFileEnumerator(fsAdapter)

	for _, folder := range []m.Path{"", "  "} {
		_, err := enumerator.List(folder, true)
		require.ErrorIs(t, err, m.ErrFolderNotSelected)
		assert.True(t, m.IsValidationError(err))
	}
}

func TestFileEnumerator_Symlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "target.txt"), "t")
	writeFile(t, filepath.Join(outside, "nested", "hidden.txt"), "h")

	if err := os.Symlink(filepath.Join(outside, "target.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(outside, "missing.txt"), filepath.Join(root, "broken.txt")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "nested"), filepath.Join(root, "dirlink")))
	// A cycle back to the root must not hang the walk.
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop")))

	enumerator := NewFileEnumerator(adapter.NewLocalSourceFSAdapter())
	files, err := enumerator.List(m.Path(root), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"link.txt"}, baseNames(files))
}

func TestFileEnumerator_SkipsUnreadableEntries(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	enumerator := NewFileEnumerator(fsAdapter)

	root := m.Path("/data")
	permErr := &fs.PathError{Op: "open", Path: "/data/locked", Err: fs.ErrPermission}

	fsAdapter.On("FileInfo", root).Return(dirInfo("data"), nil)
	fsAdapter.On("Walk", root, true, mock.Anything).Return(func(_ m.Path, _ bool, fn adapter.FilepathWalkFunc) error {
		steps := []struct {
			path string
			info os.FileInfo
			err  error
		}{
			{"/data", dirInfo("data"), nil},
			{"/data/a.txt", fileInfo("a.txt"), nil},
			{"/data/locked", dirInfo("locked"), permErr},
			{"/data/gone.txt", nil, fs.ErrNotExist},
			{"/data/b.txt", fileInfo("b.txt"), nil},
		}
		for _, step := range steps {
			if err := fn(step.path, step.info, step.err); err != nil {
				return err
			}
		}

		return nil
	})

	files, err := enumerator.List(root, true)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"/data/a.txt", "/data/b.txt"}, files)
}

func TestFileEnumerator_RootErrorAborts(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	enumerator := NewFileEnumerator(fsAdapter)

	root := m.Path("/data")
	rootErr := errors.New("readdir failed")

	fsAdapter.On("FileInfo", root).Return(dirInfo("data"), nil)
	fsAdapter.On("Walk", root, false, mock.Anything).Return(func(_ m.Path, _ bool, fn adapter.FilepathWalkFunc) error {
		// filepath.Walk visits the root first, then reports its read error.
		if err := fn("/data", dirInfo("data"), nil); err != nil {
			return err
		}

		return fn("/data", dirInfo("data"), rootErr)
	})

	_, err := enumerator.List(root, false)
	require.ErrorIs(t, err, rootErr)

	var fsErr *m.FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, "list", fsErr.Op)
}

func TestFileEnumerator_SymlinkedFolderKeepsGivenPrefix(t *testing.T) {
	enumerator := NewFileEnumerator(adapter.NewLocalSourceFSAdapter())

	target := t.TempDir()
	writeFile(t, filepath.Join(target, "sub", "a.txt"), "a")

	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := enumerator.List(m.Path(link), true)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(link, "sub", "a.txt"))}, files)
}
