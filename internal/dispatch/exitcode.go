package dispatch

import (
	"errors"
	"os/exec"
)

// exitCode splits the error of cmd.Run into the process exit status and a
// failure to run at all. Exit statuses are not failures.
func exitCode(err error) (int, error) {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return 0, err
	}
}
