package main

import (
	"github.com/spf13/cobra"

	"github.com/spotter-ci/spotter-cli/internal/cli"
	"github.com/spotter-ci/spotter-cli/internal/errors"
)

var (
	commit       string
	organization string
	outputPath   string
	pipeline     string

	// artifactCmd fetches a single artifact of a build & writes its raw contents to stdout or a file. The build is
	// located by commit SHA instead of a build URL.
	artifactCmd = &cobra.Command{
		Use:   "artifact",
		Short: "Fetch a raw test result artifact from a Buildkite build",
		Long:  descriptionArtifact,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetchConfig := cli.FetchArtifactConfig{
				ArtifactName: cliConfig.ArtifactName,
				Commit:       commit,
				Organization: organization,
				OutputPath:   outputPath,
				Pipeline:     pipeline,
			}

			if fetchConfig.Organization == "" {
				fetchConfig.Organization = cliConfig.Buildkite.OrganizationSlug
			}

			if fetchConfig.Pipeline == "" {
				fetchConfig.Pipeline = cliConfig.Buildkite.PipelineSlug
			}

			if fetchConfig.Commit == "" {
				fetchConfig.Commit = cliConfig.Buildkite.Commit
			}

			if fetchConfig.Commit == "" {
				sha, err := headCommit()
				if err != nil {
					return logError(err)
				}

				fetchConfig.Commit = sha
			}

			return errors.WithStack(spotter.FetchArtifact(cmd.Context(), fetchConfig))
		},
	}
)

func init() {
	artifactCmd.Flags().StringVar(&organization, "organization", "",
		"the organization slug (defaults to the Buildkite agent's environment)")
	artifactCmd.Flags().StringVar(&pipeline, "pipeline", "",
		"the pipeline slug (defaults to the Buildkite agent's environment)")
	artifactCmd.Flags().StringVar(&commit, "commit", "",
		"the commit SHA (defaults to the Buildkite agent's environment, or the local repository HEAD)")
	artifactCmd.Flags().StringVar(&outputPath, "output", "", "write the artifact to a file instead of stdout")

	rootCmd.AddCommand(artifactCmd)
}
