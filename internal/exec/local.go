// Package exec exposes a task runner that can execute arbitrary commands. This is mostly a thin wrapper around
// `os/exec` plus a mocked implementation. Storage tooling such as `gsutil` is spawned through this package so that
// tests can substitute their own runner.
package exec

import (
	"context"
	"os/exec"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// Local is a local executioner. It wraps `os/exec`
type Local struct{}

// NewCommand returns a new command that can then be executed. The command inherits the environment of the parent
// process.
func (l Local) NewCommand(ctx context.Context, cfg CommandConfig) (Command, error) {
	//nolint:gosec // Spawning a user-configurable sub-process is expected here.
	cmd := exec.CommandContext(ctx, cfg.Name, cfg.Args...)

	cmd.Stderr = cfg.Stderr
	cmd.Stdout = cfg.Stdout

	return cmd, nil
}

// GetExitStatusFromError extracts the exit code from an error
func (l Local) GetExitStatusFromError(err error) (int, error) {
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode(), nil
	}

	return 0, errors.NewInternalError("Expected error to be of type exec.ExitError, received %T", err)
}
