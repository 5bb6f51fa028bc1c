package cli

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/errors"
	"github.com/spotter-ci/spotter-cli/internal/junit"
)

// ListTests fetches the JUnit reports of a build & prints the contained test names, one per line. Any failure along
// the way aborts the whole listing; partial output is never emitted.
func (s Service) ListTests(ctx context.Context, cfg ListTestsConfig) error {
	if err := cfg.Validate(); err != nil {
		return s.logError(errors.WithStack(err))
	}

	ref, err := buildkite.ParseBuildURL(cfg.BuildURL)
	if err != nil {
		return s.logError(err)
	}

	s.Log.Debugf("Listing tests for build %q", ref)

	producer := func() ([]string, error) {
		return s.fetchTestDocuments(ctx, ref, cfg.ArtifactName)
	}

	var documents []string
	if cfg.Cache {
		documents, err = s.Cache.Fetch(ref.String(), producer)
	} else {
		documents, err = s.Cache.Refresh(ref.String(), producer)
	}
	if err != nil {
		return s.logError(err)
	}

	testNames := make([]string, 0)

	for _, document := range documents {
		names, err := junit.TestNames(strings.NewReader(document), cfg.FailuresOnly)
		if err != nil {
			return s.logError(err)
		}

		testNames = append(testNames, names...)
	}

	if err := s.emitTestNames(testNames, cfg.Sort); err != nil {
		return s.logError(err)
	}

	return nil
}

// fetchTestDocuments retrieves the bodies of all matching artifacts of a build. Contents are fetched concurrently;
// the first failure cancels all in-flight fetches & fails the whole retrieval. The returned documents are in
// artifact-listing order regardless of which fetch finished first.
func (s Service) fetchTestDocuments(
	ctx context.Context,
	ref buildkite.BuildReference,
	artifactName string,
) ([]string, error) {
	artifacts, err := s.API.ListArtifacts(ctx, ref)
	if err != nil {
		return nil, err
	}

	named, err := buildkite.NamedArtifacts(artifacts, artifactName)
	if err != nil {
		return nil, err
	}

	s.Log.Debugf("Fetching %d artifacts named %q", len(named), artifactName)

	documents := make([]string, len(named))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, artifact := range named {
		i, artifact := i, artifact

		eg.Go(func() error {
			contents, err := s.Contents.ArtifactContents(egCtx, artifact)
			if err != nil {
				return err
			}

			documents[i] = string(contents)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return documents, nil
}
