package main

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version of this CLI",
	PersistentPreRunE: unsafeInitParsingOnly,
	Run: func(cmd *cobra.Command, args []string) {
		spotter.PrintVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
