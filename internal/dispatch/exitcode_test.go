package dispatch

import (
	"fmt"
	"os/exec"
	"testing"
)

func TestExitCode_Nil(t *testing.T) {
	code, err := exitCode(nil)
	if code != 0 || err != nil {
		t.Fatalf("code=%d, err=%v", code, err)
	}
}

func TestExitCode_OtherError(t *testing.T) {
	code, err := exitCode(fmt.Errorf("exec: not found"))
	if code != 0 || err == nil {
		t.Fatalf("code=%d, err=%v", code, err)
	}
}

func TestExitCode_ExitError(t *testing.T) {
	runErr := exec.Command("bash", "-c", "exit 42").Run()

	code, err := exitCode(runErr)
	if code != 42 || err != nil {
		t.Fatalf("code=%d, err=%v", code, err)
	}
}
