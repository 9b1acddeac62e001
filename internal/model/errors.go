package model

import (
	"errors"
	"fmt"
)

var (
	// ErrFolderNotSelected is returned when no folder was supplied.
	ErrFolderNotSelected = errors.New("no folder selected")
	// ErrEmptySearch is returned when the search text is empty.
	ErrEmptySearch = errors.New("search text must not be empty")
	// ErrNotDirectory is returned when the selected folder is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrInvalidTargetName is returned when a replacement yields an unusable file name.
	ErrInvalidTargetName = errors.New("invalid target file name")
)

// ValidationError reports bad user input. It is raised before the filesystem is touched.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FilesystemError records a failed filesystem operation on a specific path.
type FilesystemError struct {
	Op   string
	Path Path
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
