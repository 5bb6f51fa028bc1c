package cli

import "github.com/spotter-ci/spotter-cli/internal/errors"

// ListTestsConfig holds the configuration for listing the tests of a build (used by `ListTests`)
type ListTestsConfig struct {
	ArtifactName string
	BuildURL     string
	Cache        bool
	FailuresOnly bool
	Sort         bool
}

func (ltc ListTestsConfig) Validate() error {
	if ltc.BuildURL == "" {
		return errors.NewConfigurationError("missing build URL")
	}

	if ltc.ArtifactName == "" {
		return errors.NewConfigurationError("missing artifact name")
	}

	return nil
}

// FetchArtifactConfig holds the configuration for downloading a single artifact (used by `FetchArtifact`). An empty
// OutputPath writes the artifact to the service's output stream.
type FetchArtifactConfig struct {
	ArtifactName string
	Commit       string
	Organization string
	OutputPath   string
	Pipeline     string
}

func (fac FetchArtifactConfig) Validate() error {
	if fac.Organization == "" {
		return errors.NewConfigurationError("missing organization slug")
	}

	if fac.Pipeline == "" {
		return errors.NewConfigurationError("missing pipeline slug")
	}

	if fac.Commit == "" {
		return errors.NewConfigurationError("missing commit")
	}

	if fac.ArtifactName == "" {
		return errors.NewConfigurationError("missing artifact name")
	}

	return nil
}

// ParseFilesConfig holds the configuration for parsing local test result files (used by `ParseFiles`)
type ParseFilesConfig struct {
	FailuresOnly bool
	Paths        []string
	Sort         bool
}

func (pfc ParseFilesConfig) Validate() error {
	if len(pfc.Paths) == 0 {
		return errors.NewConfigurationError("no file paths provided")
	}

	return nil
}
