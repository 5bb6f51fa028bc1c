// Package blobstore retrieves artifact contents from the binary storage that backs Buildkite's artifact hosting.
// The Buildkite API never serves the bytes itself - it hands out a short-lived storage location which a separately
// authorized command-line tool then reads.
package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/errors"
	"github.com/spotter-ci/spotter-cli/internal/exec"
)

// Source fetches the contents of build artifacts by chaining storage resolution & an external fetch tool.
type Source struct {
	SourceConfig
}

// NewSource is the preferred constructor for a content source. It makes sure that the configuration is valid &
// necessary defaults are applied.
func NewSource(cfg SourceConfig) (Source, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Source{}, err
	}

	return Source{cfg}, nil
}

// ArtifactContents returns the raw contents of a single artifact. At most `maxArtifactSize` bytes are read; a larger
// artifact fails with an ArtifactTooLargeError instead of being truncated silently.
func (s Source) ArtifactContents(ctx context.Context, artifact buildkite.Artifact) ([]byte, error) {
	storageLocation, err := s.Resolver.ResolveStorageLocation(ctx, artifact)
	if err != nil {
		return nil, err
	}

	objectRef, err := objectReference(storageLocation)
	if err != nil {
		return nil, err
	}

	s.Log.Debugf("Fetching %q using %q", objectRef, s.Tool)

	stdout := newCappedBuffer(maxArtifactSize)
	stderr := new(bytes.Buffer)

	command, err := s.Runner.NewCommand(ctx, exec.CommandConfig{
		Name:   s.Tool,
		Args:   []string{"cat", objectRef},
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return nil, errors.NewBlobFetchError(s.Tool, "unable to set up %s: %s", s.Tool, err)
	}

	if err := command.Start(); err != nil {
		return nil, errors.NewBlobFetchError(s.Tool, "unable to execute %s: %s", s.Tool, err)
	}

	if err := command.Wait(); err != nil {
		// Hitting the cap aborts the copy mid-stream, which usually also kills the tool with a broken pipe.
		// The buffer's own error is the accurate one in that case.
		if overflow := stdout.Err(); overflow != nil {
			return nil, overflow
		}

		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		if exitStatus, statusErr := s.Runner.GetExitStatusFromError(err); statusErr == nil {
			return nil, errors.NewBlobFetchError(s.Tool, "%s exited with status %d: %s", s.Tool, exitStatus, detail)
		}

		return nil, errors.NewBlobFetchError(s.Tool, "%s failed: %s", s.Tool, detail)
	}

	return stdout.Bytes(), nil
}

// objectReference converts a storage location into the `gs://<bucket>/<object>` form that the fetch tool
// understands. Any signed query parameters are dropped; the tool carries its own ambient authorization.
func objectReference(storageLocation *url.URL) (string, error) {
	objectPath := strings.TrimPrefix(storageLocation.Path, "/")
	if objectPath == "" {
		return "", errors.NewStorageResolutionError("the storage location %q does not reference an object", storageLocation)
	}

	return fmt.Sprintf("gs://%s", objectPath), nil
}
