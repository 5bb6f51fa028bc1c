// Package main holds the main command line interface for Spotter. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(initializationErrors) > 0 {
		for _, err := range initializationErrors {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}

	// Logging is expected to take place in `internal/cli`, as text output is the primary way of communicating
	// to a user on the terminal and is therefore one of our main concerns.
	// The error here is only inspected to determine the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
