// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"os"
	"sort"

	"github.com/yargevad/filepathx"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Create creates a new file, truncating any existing one.
func (l Local) Create(filePath string) (File, error) {
	f, err := os.Create(filePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// CreateTemp creates a new temporary file in `dir`, following the naming `pattern`.
func (l Local) CreateTemp(dir string, pattern string) (File, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Glob expands a single file-path pattern. It supports the double-star syntax for recursive matching.
func (l Local) Glob(pattern string) ([]string, error) {
	paths, err := filepathx.Glob(pattern)
	return paths, errors.WithStack(err)
}

// GlobMany expands multiple file-path patterns at once. The returned list is de-duplicated and sorted.
func (l Local) GlobMany(patterns []string) ([]string, error) {
	uniquePaths := make(map[string]struct{})

	for _, pattern := range patterns {
		paths, err := l.Glob(pattern)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			uniquePaths[path] = struct{}{}
		}
	}

	expandedPaths := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		expandedPaths = append(expandedPaths, path)
	}

	sort.Strings(expandedPaths)
	return expandedPaths, nil
}

// MkdirAll creates a directory including any missing parents.
func (l Local) MkdirAll(path string) error {
	return errors.WithStack(os.MkdirAll(path, 0o755))
}

// Open opens a file for further processing
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Remove deletes a file.
func (l Local) Remove(name string) error {
	return errors.WithStack(os.Remove(name))
}

// Rename moves a file to a new path, replacing any existing one.
func (l Local) Rename(oldname string, newname string) error {
	return errors.WithStack(os.Rename(oldname, newname))
}

// TempDir returns the default directory for temporary files.
func (l Local) TempDir() string {
	return os.TempDir()
}
