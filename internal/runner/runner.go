package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jorge-barreto/snapdown"
	"github.com/jorge-barreto/snapdown/internal/config"
	"github.com/jorge-barreto/snapdown/internal/dispatch"
)

// Directives are the block directives the snapdown command understands in
// addition to --draft.
type Directives struct {
	Skip    bool          `directive:"skip" help:"do not execute this source block"`
	Stderr  bool          `directive:"stderr" help:"capture stderr together with stdout"`
	Timeout time.Duration `directive:"timeout" help:"execution limit for this block, overriding the runner's"`
}

// Block is a parsed block carrying the command's directives.
type Block = snapdown.Block[Directives]

// Status is the outcome of checking one file.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusUpdated Status = "updated"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
)

// FileResult is the outcome of one pass over a file.
type FileResult struct {
	Path     string
	Status   Status
	Err      error
	Executed int
	Duration time.Duration
}

// Runner checks markdown files against the output of their source blocks.
type Runner struct {
	Config     *config.Config
	Dispatcher dispatch.Dispatcher
	Files      snapdown.FileStore
	Refresh    bool
	Jobs       int
}

// CheckFiles checks every file, up to Jobs at a time. Files are independent:
// a failure in one never stops the others. Results are in input order.
func (r *Runner) CheckFiles(ctx context.Context, paths []string) []FileResult {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = r.CheckFile(ctx, path)
			return nil
		})
	}
	g.Wait()
	return results
}

// CheckFile runs one reconciliation pass over path.
func (r *Runner) CheckFile(ctx context.Context, path string) FileResult {
	start := time.Now()
	res := FileResult{Path: path}

	if ctx.Err() != nil {
		res.Status = StatusError
		res.Err = ctx.Err()
		return res
	}

	env := &dispatch.Environment{
		File:  path,
		Dir:   filepath.Dir(path),
		Shell: r.Config.Shell,
	}

	var fillErr error
	files := &guardedStore{FileStore: r.Files, aborted: func() error {
		if fillErr != nil {
			return fillErr
		}
		return ctx.Err()
	}}
	err := snapdown.Run(path, snapdown.Options{ForceDraft: r.Refresh, Files: files}, func(blocks []*Block) {
		res.Executed, fillErr = r.Fill(ctx, env, blocks)
	})
	res.Duration = time.Since(start)

	var mismatch *snapdown.MismatchError
	switch {
	case files.refused:
		res.Status = StatusError
		res.Err = files.aborted()
	case fillErr != nil:
		res.Status = StatusError
		res.Err = errors.Join(fillErr, err)
	case ctx.Err() != nil:
		res.Status = StatusError
		res.Err = ctx.Err()
	case err == nil:
		res.Status = StatusPassed
	case errors.Is(err, snapdown.ErrUpdated):
		res.Status = StatusUpdated
		res.Err = err
	case errors.As(err, &mismatch):
		res.Status = StatusFailed
		res.Err = err
	default:
		res.Status = StatusError
		res.Err = err
	}
	return res
}

// guardedStore refuses to rewrite a file once aborted reports an error, so
// a failed or interrupted pass leaves the document untouched.
type guardedStore struct {
	snapdown.FileStore
	aborted func() error
	refused bool
}

func (s *guardedStore) ReadFile(path string) ([]byte, error) {
	if s.FileStore == nil {
		return snapdown.DiskStore{}.ReadFile(path)
	}
	return s.FileStore.ReadFile(path)
}

func (s *guardedStore) WriteFile(path string, data []byte) error {
	if err := s.aborted(); err != nil {
		s.refused = true
		return fmt.Errorf("not rewritten: %w", err)
	}
	if s.FileStore == nil {
		return snapdown.DiskStore{}.WriteFile(path, data)
	}
	return s.FileStore.WriteFile(path, data)
}

// Fill executes every source block and stores its output as the result of
// the next output block. A source block is one whose lang has a runner; a
// source block without a following output block before the next source
// block has its output discarded. It returns the number of executed blocks.
func (r *Runner) Fill(ctx context.Context, env *dispatch.Environment, blocks []*Block) (int, error) {
	var (
		pending  *string
		executed int
		errs     []error
	)
	for i, b := range blocks {
		if b.Lang == r.Config.Output {
			if pending != nil {
				b.SetResult(*pending)
				pending = nil
			}
			continue
		}

		rn := r.Config.RunnerFor(b.Lang)
		if rn == nil {
			continue
		}
		pending = nil
		if b.Args.Ext.Skip {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		env.BlockIndex = i + 1
		env.Lang = b.Lang
		result, err := r.Dispatcher.Dispatch(ctx, dispatch.Request{
			Runner:  *rn,
			Input:   b.Text,
			Stderr:  b.Args.Ext.Stderr,
			Timeout: b.Args.Ext.Timeout,
		}, env)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: %w", env.File, b.Line, err))
			continue
		}
		executed++
		out := FormatOutput(result)
		pending = &out
	}
	return executed, errors.Join(errs...)
}

// FormatOutput renders a block execution as the body of an output block:
// the captured output without its final newline, followed by the exit
// status when it is not zero.
func FormatOutput(result *dispatch.Result) string {
	out := strings.TrimSuffix(result.Output, "\n")
	if result.ExitCode != 0 {
		if out != "" {
			out += "\n"
		}
		out += fmt.Sprintf("[exit status %d]", result.ExitCode)
	}
	return out
}

// Verdict summarizes results as a single error, nil when every file passed.
func Verdict(results []FileResult) error {
	var updated, failed, errored int
	for _, res := range results {
		switch res.Status {
		case StatusUpdated:
			updated++
		case StatusFailed:
			failed++
		case StatusError:
			errored++
		}
	}

	var parts []string
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d file(s) failed", failed))
	}
	if errored > 0 {
		parts = append(parts, fmt.Sprintf("%d file(s) could not be checked", errored))
	}
	if updated > 0 {
		parts = append(parts, fmt.Sprintf("%d file(s) updated, re-run to verify", updated))
	}
	if len(parts) == 0 {
		return nil
	}
	return errors.New(strings.Join(parts, "; "))
}
