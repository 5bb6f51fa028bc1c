package mocks

import (
	"io/fs"
	"os"
	"strings"
	"time"
)

// File is a mocked implementation of 'fs.File', backed by a pair of in-memory buffers. Reads are served from
// `Reader`, writes collect in `Builder`.
type File struct {
	*strings.Builder
	*strings.Reader

	MockName func() string
	MockSync func() error
}

// Close will always return nil.
func (f *File) Close() error {
	return nil
}

// IsDir will always return false.
func (f *File) IsDir() bool {
	return false
}

// Mode will always return `fs.ModeIrregular`
func (f *File) Mode() fs.FileMode {
	return fs.ModeIrregular
}

// ModTime will always return the current time.
func (f *File) ModTime() time.Time {
	return time.Now()
}

// Name either calls the configured mock of itself or returns an empty string
func (f *File) Name() string {
	if f.MockName != nil {
		return f.MockName()
	}

	return ""
}

// Stat is a no-op. This mocked file implementation covers the `os.FileInfo` interface already.
func (f *File) Stat() (os.FileInfo, error) {
	return f, nil
}

// Sync either calls the configured mock of itself or returns nil.
func (f *File) Sync() error {
	if f.MockSync != nil {
		return f.MockSync()
	}

	return nil
}

// Sys always returns nil.
func (f *File) Sys() any {
	return nil
}
