package main

import (
	"github.com/spf13/cobra"

	"github.com/spotter-ci/spotter-cli/internal/cli"
	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// parseCmd extracts test names from local files instead of build artifacts. It shares the listing flags with the
// root command, but needs neither an API token nor network access.
var parseCmd = &cobra.Command{
	Use:               "parse [file...]",
	Short:             "List the tests from local JUnit XML files",
	Long:              descriptionParse,
	Args:              cobra.MinimumNArgs(1),
	PersistentPreRunE: unsafeInitParsingOnly,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.WithStack(spotter.ParseFiles(cmd.Context(), cli.ParseFilesConfig{
			FailuresOnly: cliConfig.FailuresOnly,
			Paths:        args,
			Sort:         cliConfig.Sort,
		}))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
