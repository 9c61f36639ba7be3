package dispatch

import (
	"fmt"
	"os/exec"
)

// Preflight checks that the shell used to run blocks is available on PATH.
func Preflight(shell string) error {
	if _, err := exec.LookPath(shell); err != nil {
		return fmt.Errorf("shell %q not found in PATH", shell)
	}
	return nil
}
