package mocks

import (
	"context"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// ArtifactContentSource is a mocked implementation of 'cli.ArtifactContentSource'.
type ArtifactContentSource struct {
	MockArtifactContents func(context.Context, buildkite.Artifact) ([]byte, error)
}

// ArtifactContents either calls the configured mock of itself or returns an error if that doesn't exist.
func (a *ArtifactContentSource) ArtifactContents(ctx context.Context, artifact buildkite.Artifact) ([]byte, error) {
	if a.MockArtifactContents != nil {
		return a.MockArtifactContents(ctx, artifact)
	}

	return nil, errors.NewConfigurationError("MockArtifactContents was not configured")
}
