package buildkite

import (
	"go.uber.org/zap"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// ClientConfig is the configuration object for the Buildkite API client
type ClientConfig struct {
	AccessToken string
	Debug       bool
	Host        string
	Insecure    bool
	Log         *zap.SugaredLogger
}

// Validate checks the configuration for errors
func (cc ClientConfig) Validate() error {
	if cc.AccessToken == "" {
		return errors.NewConfigurationError("missing Buildkite API access token")
	}

	if cc.Log == nil {
		return errors.NewInternalError("missing logger")
	}

	return nil
}

// WithDefaults returns a copy of the configuration with defaults applied where necessary.
func (cc ClientConfig) WithDefaults() ClientConfig {
	if cc.Host == "" {
		cc.Host = defaultHost
	}

	return cc
}
