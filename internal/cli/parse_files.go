package cli

import (
	"context"

	"github.com/spotter-ci/spotter-cli/internal/errors"
	"github.com/spotter-ci/spotter-cli/internal/junit"
)

// ParseFiles extracts test names from local JUnit reports instead of build artifacts. Patterns support the usual
// glob syntax, including `**` for recursive matching.
func (s Service) ParseFiles(ctx context.Context, cfg ParseFilesConfig) error {
	if err := cfg.Validate(); err != nil {
		return s.logError(errors.WithStack(err))
	}

	paths, err := s.FileSystem.GlobMany(cfg.Paths)
	if err != nil {
		return s.logError(errors.NewSystemError("unable to expand file patterns: %s", err))
	}

	if len(paths) == 0 {
		return s.logError(errors.NewInputError("no test result files found for %v", cfg.Paths))
	}

	testNames := make([]string, 0)

	for _, path := range paths {
		s.Log.Debugf("Attempting to parse %q", path)

		fd, err := s.FileSystem.Open(path)
		if err != nil {
			return s.logError(errors.NewSystemError("unable to open file: %s", err))
		}

		names, err := junit.TestNames(fd, cfg.FailuresOnly)
		fd.Close()
		if err != nil {
			return s.logError(errors.Wrapf(err, "unable to parse %q", path))
		}

		testNames = append(testNames, names...)
	}

	if err := s.emitTestNames(testNames, cfg.Sort); err != nil {
		return s.logError(err)
	}

	return nil
}
