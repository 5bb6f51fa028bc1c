package blobstore

import (
	"go.uber.org/zap"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// SourceConfig is the configuration object for a blob-storage content source
type SourceConfig struct {
	Log      *zap.SugaredLogger
	Resolver StorageResolver
	Runner   TaskRunner
	Tool     string
}

// Validate checks the configuration for errors
func (sc SourceConfig) Validate() error {
	if sc.Log == nil {
		return errors.NewInternalError("missing logger")
	}

	if sc.Resolver == nil {
		return errors.NewInternalError("missing storage resolver")
	}

	if sc.Runner == nil {
		return errors.NewInternalError("missing task runner")
	}

	return nil
}

// WithDefaults returns a copy of the configuration with defaults applied where necessary.
func (sc SourceConfig) WithDefaults() SourceConfig {
	if sc.Tool == "" {
		sc.Tool = defaultTool
	}

	return sc
}
