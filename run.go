package snapdown

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/jorge-barreto/snapdown/internal/fsutil"
)

// ErrUpdated is matched by the error Run returns after rewriting a file.
// The file must be checked again to verify it.
var ErrUpdated = errors.New("file updated, re-run to verify")

// UpdatedError reports a pass that ended in rewrite mode.
type UpdatedError struct {
	Path string
}

func (e *UpdatedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, ErrUpdated)
}

func (e *UpdatedError) Unwrap() error { return ErrUpdated }

// Mismatch is a block whose computed result differs from its recorded text.
type Mismatch struct {
	Line     int
	Lang     string
	Expected string
	Actual   string
}

// Diff renders the difference between the recorded and the computed text.
func (m Mismatch) Diff() string {
	return cmp.Diff(m.Expected, m.Actual)
}

// MismatchError reports every mismatching block of one pass.
type MismatchError struct {
	Path       string
	Mismatches []Mismatch
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d block(s) differ from the computed output", e.Path, len(e.Mismatches))
	for _, m := range e.Mismatches {
		fmt.Fprintf(&sb, "\n\nline %d (%s) (-expected +actual):\n%s", m.Line, m.Lang, m.Diff())
	}
	return sb.String()
}

// FileStore reads and replaces whole files.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// DiskStore is the FileStore backed by the local filesystem. Writes are
// atomic.
type DiskStore struct{}

func (DiskStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (DiskStore) WriteFile(path string, data []byte) error {
	return fsutil.WriteFileAtomic(path, data, 0644)
}

// Options configures a pass.
type Options struct {
	// ForceDraft marks every block as draft, regenerating the whole file.
	ForceDraft bool
	// Files defaults to DiskStore.
	Files FileStore
}

// Run performs one reconciliation pass over the file at path.
//
// The blocks are parsed in file order and handed to fn, which stores each
// block's computed output with SetResult. If any block is a draft or has
// an empty body, the file is rewritten and the returned error matches
// ErrUpdated. Otherwise every stored result is compared with the block's
// recorded text and all differences are returned as a *MismatchError.
func Run[E any](path string, opts Options, fn func([]*Block[E])) error {
	files := opts.Files
	if files == nil {
		files = DiskStore{}
	}

	data, err := files.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	blocks, tail, err := Parse[E](string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if opts.ForceDraft {
		for _, b := range blocks {
			b.Args.Draft = true
		}
	}

	fn(blocks)

	if NeedsUpdate(blocks) {
		if err := files.WriteFile(path, []byte(Render(blocks, tail))); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return &UpdatedError{Path: path}
	}

	if mismatches := Compare(blocks); len(mismatches) > 0 {
		return &MismatchError{Path: path, Mismatches: mismatches}
	}
	return nil
}

// NeedsUpdate reports whether any block puts the pass into rewrite mode.
func NeedsUpdate[E any](blocks []*Block[E]) bool {
	for _, b := range blocks {
		if b.NeedsUpdate() {
			return true
		}
	}
	return false
}

// Compare consumes every block's result and returns the blocks whose
// result differs from their recorded text, in file order. Blocks without
// a result, or whose result was already taken, are not compared.
func Compare[E any](blocks []*Block[E]) []Mismatch {
	var mismatches []Mismatch
	for _, b := range blocks {
		if !b.HasResult() {
			continue
		}
		result, _ := b.TakeResult()
		if result == b.Text {
			continue
		}
		mismatches = append(mismatches, Mismatch{
			Line:     b.Line,
			Lang:     b.Lang,
			Expected: b.Text,
			Actual:   result,
		})
	}
	return mismatches
}
