package mocks

import (
	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// ResultCache is a mocked implementation of 'cli.ResultCache'.
type ResultCache struct {
	MockFetch   func(string, func() ([]string, error)) ([]string, error)
	MockRefresh func(string, func() ([]string, error)) ([]string, error)
}

// Fetch either calls the configured mock of itself or returns an error if that doesn't exist.
func (r *ResultCache) Fetch(key string, producer func() ([]string, error)) ([]string, error) {
	if r.MockFetch != nil {
		return r.MockFetch(key, producer)
	}

	return nil, errors.NewConfigurationError("MockFetch was not configured")
}

// Refresh either calls the configured mock of itself or returns an error if that doesn't exist.
func (r *ResultCache) Refresh(key string, producer func() ([]string, error)) ([]string, error) {
	if r.MockRefresh != nil {
		return r.MockRefresh(key, producer)
	}

	return nil, errors.NewConfigurationError("MockRefresh was not configured")
}
