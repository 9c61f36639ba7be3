// Package snaptest runs snapdown passes from Go tests.
package snaptest

import (
	"errors"
	"testing"

	"github.com/jorge-barreto/snapdown"
	"github.com/jorge-barreto/snapdown/internal/config"
)

// Run performs a pass over the file at path and reports the outcome on t.
// Setting SNAPDOWN_REFRESH regenerates every block. A rewritten file fails
// the test so that it is run again to verify the new content.
func Run[E any](t testing.TB, path string, fn func([]*snapdown.Block[E])) {
	t.Helper()
	err := snapdown.Run(path, snapdown.Options{ForceDraft: config.RefreshRequested()}, fn)
	Report(t, err)
}

// Report translates the error of a pass into test failures: one error per
// mismatching block, a fatal failure for anything else.
func Report(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		return
	}
	var me *snapdown.MismatchError
	if errors.As(err, &me) {
		for _, m := range me.Mismatches {
			t.Errorf("%s:%d: %s block differs (-expected +actual):\n%s", me.Path, m.Line, m.Lang, m.Diff())
		}
		return
	}
	t.Fatal(err)
}
