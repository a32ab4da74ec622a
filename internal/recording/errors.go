package recording

import (
	"errors"
	"fmt"
)

var (
	// ErrPathResolution marks lookups whose folder path could not be resolved.
	ErrPathResolution = errors.New("path resolution failed")
	// ErrNotADirectory marks lookups whose folder path names a non-directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrDirectoryRead marks lookups whose folder could not be listed.
	ErrDirectoryRead = errors.New("directory read failed")
)

// PathResolutionError reports a folder path that could not be canonicalized:
// a missing component, a dangling symlink or denied access.
type PathResolutionError struct {
	Input string
	Err   error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve path %q: %v", e.Input, e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

func (e *PathResolutionError) Is(target error) bool { return target == ErrPathResolution }

// NotADirectoryError reports a folder path that resolved to something other
// than a directory.
type NotADirectoryError struct {
	Input    string
	Resolved string
}

func (e *NotADirectoryError) Error() string {
	if e.Resolved != "" && e.Resolved != e.Input {
		return fmt.Sprintf("path is not a directory: %q (resolved to %q)", e.Input, e.Resolved)
	}
	return fmt.Sprintf("path is not a directory: %q", e.Input)
}

func (e *NotADirectoryError) Is(target error) bool { return target == ErrNotADirectory }

// DirectoryReadError reports a resolved directory whose entries could not be
// listed.
type DirectoryReadError struct {
	Input string
	Dir   string
	Err   error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("failed to read directory %q: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

func (e *DirectoryReadError) Is(target error) bool { return target == ErrDirectoryRead }
