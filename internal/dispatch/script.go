package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RunBlock executes a source block through the environment's shell, with
// the block body on stdin. Stdout is captured; stderr joins it when the
// runner or the request asks for it. A non-zero exit is reported in the
// result, not as an error; a cancelled or expired context is an error.
func RunBlock(ctx context.Context, req Request, env *Environment) (*Result, error) {
	timeout := req.timeout()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	expanded := ExpandVars(req.Runner.Run, env.Vars())

	cmd := exec.CommandContext(ctx, env.Shell, "-c", expanded)
	cmd.Dir = env.Dir
	cmd.Env = BuildEnv(env, req.Runner.Env)
	cmd.Stdin = strings.NewReader(req.Input)
	cmd.WaitDelay = time.Second

	var captured, stderr bytes.Buffer
	cmd.Stdout = &captured
	if req.Stderr || req.Runner.Stderr {
		cmd.Stderr = &captured
	} else {
		cmd.Stderr = &stderr
	}

	code, err := exitCode(cmd.Run())
	if ctxErr := ctx.Err(); ctxErr != nil {
		// A killed process has no meaningful output.
		if errors.Is(ctxErr, context.DeadlineExceeded) && timeout > 0 {
			return nil, fmt.Errorf("%s block %d timed out after %s", req.Runner.Lang, env.BlockIndex, timeout)
		}
		return nil, fmt.Errorf("%s block %d: %w", req.Runner.Lang, env.BlockIndex, ctxErr)
	}
	if err != nil {
		return nil, fmt.Errorf("%s block %d: %w", req.Runner.Lang, env.BlockIndex, err)
	}

	return &Result{ExitCode: code, Output: captured.String()}, nil
}
