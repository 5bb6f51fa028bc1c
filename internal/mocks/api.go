package mocks

import (
	"context"
	"net/url"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// API is a mocked implementation of 'buildkite.Client'.
type API struct {
	MockBuildForCommit         func(context.Context, string, string, string) (buildkite.BuildReference, error)
	MockListArtifacts          func(context.Context, buildkite.BuildReference) ([]buildkite.Artifact, error)
	MockResolveStorageLocation func(context.Context, buildkite.Artifact) (*url.URL, error)
}

// BuildForCommit either calls the configured mock of itself or returns an error if that doesn't exist.
func (a *API) BuildForCommit(
	ctx context.Context,
	organizationSlug string,
	pipelineSlug string,
	commitSha string,
) (buildkite.BuildReference, error) {
	if a.MockBuildForCommit != nil {
		return a.MockBuildForCommit(ctx, organizationSlug, pipelineSlug, commitSha)
	}

	return buildkite.BuildReference{}, errors.NewConfigurationError("MockBuildForCommit was not configured")
}

// ListArtifacts either calls the configured mock of itself or returns an error if that doesn't exist.
func (a *API) ListArtifacts(ctx context.Context, ref buildkite.BuildReference) ([]buildkite.Artifact, error) {
	if a.MockListArtifacts != nil {
		return a.MockListArtifacts(ctx, ref)
	}

	return nil, errors.NewConfigurationError("MockListArtifacts was not configured")
}

// ResolveStorageLocation either calls the configured mock of itself or returns an error if that doesn't exist.
func (a *API) ResolveStorageLocation(ctx context.Context, artifact buildkite.Artifact) (*url.URL, error) {
	if a.MockResolveStorageLocation != nil {
		return a.MockResolveStorageLocation(ctx, artifact)
	}

	return nil, errors.NewConfigurationError("MockResolveStorageLocation was not configured")
}
