package cli

import (
	"context"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/fs"
)

// APIClient is the interface of our Buildkite API layer.
type APIClient interface {
	BuildForCommit(
		ctx context.Context,
		organizationSlug string,
		pipelineSlug string,
		commitSha string,
	) (buildkite.BuildReference, error)
	ListArtifacts(ctx context.Context, ref buildkite.BuildReference) ([]buildkite.Artifact, error)
}

// ArtifactContentSource retrieves the raw contents of a single artifact.
type ArtifactContentSource interface {
	ArtifactContents(ctx context.Context, artifact buildkite.Artifact) ([]byte, error)
}

// ResultCache stores fetched test-result documents between invocations.
type ResultCache interface {
	Fetch(key string, producer func() ([]string, error)) ([]string, error)
	Refresh(key string, producer func() ([]string, error)) ([]string, error)
}

// FileSystem is an abstraction over file-systems. This is implemented by the default `os` package and can also be
// used for mocking.
type FileSystem interface {
	Create(name string) (fs.File, error)
	Open(name string) (fs.File, error)
	GlobMany(patterns []string) ([]string, error)
}
