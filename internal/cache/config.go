package cache

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spotter-ci/spotter-cli/internal/errors"
	"github.com/spotter-ci/spotter-cli/internal/fs"
)

const defaultDirName = "spotter-cache"

// CacheConfig is the configuration object for the test-results cache
type CacheConfig struct {
	Dir        string
	FileSystem fs.FileSystem
	Log        *zap.SugaredLogger
}

// Validate checks the configuration for errors
func (cc CacheConfig) Validate() error {
	if cc.FileSystem == nil {
		return errors.NewInternalError("missing file-system")
	}

	if cc.Log == nil {
		return errors.NewInternalError("missing logger")
	}

	return nil
}

// WithDefaults returns a copy of the configuration with defaults applied where necessary.
func (cc CacheConfig) WithDefaults() CacheConfig {
	if cc.Dir == "" && cc.FileSystem != nil {
		cc.Dir = filepath.Join(cc.FileSystem.TempDir(), defaultDirName)
	}

	return cc
}
