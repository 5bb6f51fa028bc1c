package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spotter-ci/spotter-cli/internal/blobstore"
	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/cache"
	"github.com/spotter-ci/spotter-cli/internal/cli"
	"github.com/spotter-ci/spotter-cli/internal/errors"
	"github.com/spotter-ci/spotter-cli/internal/exec"
	"github.com/spotter-ci/spotter-cli/internal/fs"
	"github.com/spotter-ci/spotter-cli/internal/logging"
)

var (
	spotter   cli.Service
	cliConfig config

	// initializationErrors collects any errors that occur while the command tree is being set up. They are
	// reported in 'main' - the `init` functions here have no other way of surfacing them.
	initializationErrors []error

	rootCmd = &cobra.Command{
		Use:               "spotter [build-url]",
		Short:             "Spotter lists the tests that ran on a Buildkite build",
		Long:              descriptionSpotter,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initCLIService,
		SilenceErrors:     true, // Errors are logged through 'internal/cli' or the PersistentPreRunE hooks
		SilenceUsage:      true, // Disables usage text on error
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.WithStack(cmd.Help())
			}

			return errors.WithStack(spotter.ListTests(cmd.Context(), cli.ListTestsConfig{
				ArtifactName: cliConfig.ArtifactName,
				BuildURL:     args[0],
				Cache:        cliConfig.Cache,
				FailuresOnly: cliConfig.FailuresOnly,
				Sort:         cliConfig.Sort,
			}))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().String("artifact-name", "junit.xml", "the file name of the test result artifacts")
	rootCmd.PersistentFlags().Bool("failures-only", false, "only list the names of failed tests")
	rootCmd.PersistentFlags().Bool("sort", true, "print the test listing in sorted order")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug output")

	rootCmd.PersistentFlags().String("api-host", "", "the host of the Buildkite API")
	if err := rootCmd.PersistentFlags().MarkHidden("api-host"); err != nil {
		initializationErrors = append(initializationErrors, err)
	}

	rootCmd.PersistentFlags().Bool("insecure", false, "disable TLS for the API")
	if err := rootCmd.PersistentFlags().MarkHidden("insecure"); err != nil {
		initializationErrors = append(initializationErrors, err)
	}

	for _, name := range []string{"artifact-name", "failures-only", "sort", "verbose", "api-host", "insecure"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			initializationErrors = append(initializationErrors, err)
		}
	}

	rootCmd.Flags().Bool("cache", true, "re-use previously fetched test results")
	if err := viper.BindPFlag("cache", rootCmd.Flags().Lookup("cache")); err != nil {
		initializationErrors = append(initializationErrors, err)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initCLIService sets up the CLI service with all of its dependencies wired to the real Buildkite API, file-system,
// and blob-fetch tooling. It is the default PersistentPreRunE of the command tree; sub-commands that don't need API
// access override it with `unsafeInitParsingOnly`.
func initCLIService(cmd *cobra.Command, args []string) error {
	cfg, err := parseConfig()
	if err != nil {
		return logError(err)
	}

	logger := logging.New(cfg.Verbose)

	apiClient, err := buildkite.NewClient(buildkite.ClientConfig{
		AccessToken: cfg.Secrets.APIToken,
		Debug:       cfg.Verbose,
		Host:        cfg.APIHost,
		Insecure:    cfg.Insecure,
		Log:         logger,
	})
	if err != nil {
		return logError(errors.Wrap(err, "unable to create API client"))
	}

	contents, err := blobstore.NewSource(blobstore.SourceConfig{
		Log:      logger,
		Resolver: apiClient,
		Runner:   exec.Local{},
	})
	if err != nil {
		return logError(errors.Wrap(err, "unable to create artifact source"))
	}

	resultCache, err := cache.NewCache(cache.CacheConfig{
		FileSystem: fs.Local{},
		Log:        logger,
	})
	if err != nil {
		return logError(errors.Wrap(err, "unable to create result cache"))
	}

	spotter = cli.Service{
		API:        apiClient,
		Cache:      resultCache,
		Contents:   contents,
		FileSystem: fs.Local{},
		Log:        logger,
		Output:     os.Stdout,
	}

	return nil
}

// unsafeInitParsingOnly initializes the CLI service with the file-system & logging only. Any operation that needs
// API access will fail when invoked on a service that was constructed this way.
func unsafeInitParsingOnly(cmd *cobra.Command, args []string) error {
	cfg, err := parseConfig()
	if err != nil {
		return logError(err)
	}

	spotter = cli.Service{
		FileSystem: fs.Local{},
		Log:        logging.New(cfg.Verbose),
		Output:     os.Stdout,
	}

	return nil
}

// logError mirrors the error reporting of 'internal/cli' for errors that occur before the service exists.
func logError(err error) error {
	logging.New(false).Errorf(err.Error())
	return err
}
