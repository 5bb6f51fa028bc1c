package blobstore

import (
	"context"
	"net/url"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/exec"
)

// StorageResolver resolves an artifact record into the location of its contents on the backing blob storage. This
// is implemented by the Buildkite API client.
type StorageResolver interface {
	ResolveStorageLocation(ctx context.Context, artifact buildkite.Artifact) (*url.URL, error)
}

// TaskRunner is an abstraction over the execution environment for the external fetch tool.
type TaskRunner interface {
	NewCommand(ctx context.Context, cfg exec.CommandConfig) (exec.Command, error)
	GetExitStatusFromError(err error) (int, error)
}
