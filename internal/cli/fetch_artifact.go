package cli

import (
	"context"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// FetchArtifact locates a build by commit & writes the raw contents of one of its artifacts to the output stream.
func (s Service) FetchArtifact(ctx context.Context, cfg FetchArtifactConfig) error {
	if err := cfg.Validate(); err != nil {
		return s.logError(errors.WithStack(err))
	}

	ref, err := s.API.BuildForCommit(ctx, cfg.Organization, cfg.Pipeline, cfg.Commit)
	if err != nil {
		return s.logError(err)
	}

	s.Log.Debugf("Using build %q for commit %q", ref, cfg.Commit)

	artifacts, err := s.API.ListArtifacts(ctx, ref)
	if err != nil {
		return s.logError(err)
	}

	named, err := buildkite.NamedArtifacts(artifacts, cfg.ArtifactName)
	if err != nil {
		return s.logError(err)
	}

	// Multiple jobs can upload an artifact under the same name. The first one wins, mirroring the
	// builds-by-commit lookup.
	contents, err := s.Contents.ArtifactContents(ctx, named[0])
	if err != nil {
		return s.logError(err)
	}

	if cfg.OutputPath == "" {
		if _, err := s.Output.Write(contents); err != nil {
			return s.logError(errors.NewSystemError("unable to write artifact contents: %s", err))
		}

		return nil
	}

	fd, err := s.FileSystem.Create(cfg.OutputPath)
	if err != nil {
		return s.logError(errors.NewSystemError("unable to create file %q: %s", cfg.OutputPath, err))
	}
	defer fd.Close()

	if _, err := fd.Write(contents); err != nil {
		return s.logError(errors.NewSystemError("unable to write artifact contents: %s", err))
	}

	return nil
}
