// Package cli holds the main business logic in our CLI. This is mainly:
// 1. Sequencing the Buildkite API calls & artifact fetches that turn a build reference into a test listing.
// 2. User-friendly logging
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/spotter`.
package cli

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	spotter "github.com/spotter-ci/spotter-cli"
	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// Service is the main CLI service.
type Service struct {
	API        APIClient
	Cache      ResultCache
	Contents   ArtifactContentSource
	FileSystem FileSystem
	Log        *zap.SugaredLogger
	Output     io.Writer
}

// logError reports an error to the user before returning it up the stack. Errors that carry additional detail for
// end-users are rendered in their decorated form.
func (s Service) logError(err error) error {
	s.Log.Errorf(errors.WithDecoration(err).Error())
	return err
}

// PrintVersion prints the CLI version
func (s Service) PrintVersion() {
	s.Log.Infoln(spotter.Version)
}

// emitTestNames writes one test name per line to the output stream, optionally sorted byte-wise. Nothing is written
// unless the whole pipeline before this point succeeded.
func (s Service) emitTestNames(testNames []string, sorted bool) error {
	if sorted {
		sort.Strings(testNames)
	}

	for _, testName := range testNames {
		if _, err := fmt.Fprintln(s.Output, testName); err != nil {
			return errors.NewSystemError("unable to write test names: %s", err)
		}
	}

	return nil
}
