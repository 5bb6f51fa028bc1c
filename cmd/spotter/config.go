package main

import (
	"github.com/caarlos0/env/v7"
	"github.com/go-git/go-git/v5"
	"github.com/spf13/viper"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// config is the internal representation of the CLI configuration. Most values are bound to command-line flags
// through viper; secrets & the ambient Buildkite environment are only ever read from environment variables.
type config struct {
	APIHost      string `mapstructure:"api-host"`
	ArtifactName string `mapstructure:"artifact-name"`
	Cache        bool   `mapstructure:"cache"`
	FailuresOnly bool   `mapstructure:"failures-only"`
	Insecure     bool   `mapstructure:"insecure"`
	Sort         bool   `mapstructure:"sort"`
	Verbose      bool   `mapstructure:"verbose"`

	Buildkite buildkiteEnv

	Secrets struct {
		APIToken string `env:"BUILDKITE_API_TOKEN"`
	}
}

// buildkiteEnv is the ambient environment of a Buildkite agent. When Spotter itself runs as part of a build, the
// agent's own coordinates serve as defaults for the `artifact` sub-command.
type buildkiteEnv struct {
	Detected bool `env:"BUILDKITE"`

	Branch           string `env:"BUILDKITE_BRANCH"`
	Commit           string `env:"BUILDKITE_COMMIT"`
	OrganizationSlug string `env:"BUILDKITE_ORGANIZATION_SLUG"`
	PipelineSlug     string `env:"BUILDKITE_PIPELINE_SLUG"`
}

// parseConfig reads the configuration from all of its sources & stores the result in the package-wide `cliConfig`.
// Flags take precedence over environment variables.
func parseConfig() (config, error) {
	var cfg config

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.NewConfigurationError("unable to parse configuration: %s", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.NewConfigurationError("unable to parse environment variables: %s", err)
	}

	cliConfig = cfg
	return cfg, nil
}

// headCommit returns the commit SHA that the local repository's HEAD points at. It serves as the last fallback for
// the `artifact` sub-command when no commit was specified & the process is not running on a Buildkite agent.
func headCommit() (string, error) {
	repository, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.NewConfigurationError("unable to determine commit: %s", err)
	}

	head, err := repository.Head()
	if err != nil {
		return "", errors.NewConfigurationError("unable to determine commit: %s", err)
	}

	return head.Hash().String(), nil
}
