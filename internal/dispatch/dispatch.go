package dispatch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jorge-barreto/snapdown/internal/config"
)

// Environment holds the execution context shared by the blocks of one file.
type Environment struct {
	File       string // markdown file being checked
	Dir        string // working directory for every block of File
	Shell      string
	BlockIndex int // 1-based index of the block being executed
	Lang       string
	baseEnv    []string // lazily populated os.Environ snapshot
}

// Vars returns the variable substitution map for runner commands.
func (e *Environment) Vars() map[string]string {
	return map[string]string{
		"FILE":  e.File,
		"DIR":   e.Dir,
		"LANG":  e.Lang,
		"BLOCK": fmt.Sprint(e.BlockIndex),
	}
}

// Request is one source block to execute.
type Request struct {
	Runner  config.Runner
	Input   string        // block body, fed to the command on stdin
	Stderr  bool          // capture stderr in addition to the runner's own setting
	Timeout time.Duration // overrides Runner.Timeout when positive
}

// timeout returns the effective execution limit for the request.
func (r Request) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return time.Duration(r.Runner.Timeout) * time.Second
}

// Result holds the outcome of a block execution.
type Result struct {
	ExitCode int
	Output   string
}

// BuildEnv returns the environment variables for child processes.
// It inherits the current environment, adds the runner's env entries and
// SNAPDOWN_ variables describing the block.
// The base environment is snapshotted once per Environment and reused across calls.
func BuildEnv(env *Environment, extra map[string]string) []string {
	if env.baseEnv == nil {
		for _, e := range os.Environ() {
			key := strings.SplitN(e, "=", 2)[0]
			if key == config.RefreshEnv {
				continue
			}
			env.baseEnv = append(env.baseEnv, e)
		}
	}
	result := make([]string, len(env.baseEnv), len(env.baseEnv)+4+len(extra))
	copy(result, env.baseEnv)
	for k, v := range extra {
		result = append(result, k+"="+v)
	}
	result = append(result,
		"SNAPDOWN_FILE="+env.File,
		"SNAPDOWN_DIR="+env.Dir,
		"SNAPDOWN_LANG="+env.Lang,
		fmt.Sprintf("SNAPDOWN_BLOCK=%d", env.BlockIndex),
	)
	return result
}

// Dispatcher is the interface for executing blocks. Tests can substitute a mock.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request, env *Environment) (*Result, error)
}

// DefaultDispatcher runs blocks through the configured shell.
type DefaultDispatcher struct{}

func (d *DefaultDispatcher) Dispatch(ctx context.Context, req Request, env *Environment) (*Result, error) {
	return RunBlock(ctx, req, env)
}
