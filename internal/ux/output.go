package ux

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/jorge-barreto/snapdown"
	"github.com/jorge-barreto/snapdown/internal/runner"
)

// Color helpers. fatih/color disables them for NO_COLOR and non-terminals.
var (
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Cyan   = color.New(color.FgCyan)
)

func elapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FileResult prints the outcome of one file, with a diff per mismatching block.
func FileResult(w io.Writer, res runner.FileResult) {
	switch res.Status {
	case runner.StatusPassed:
		fmt.Fprintf(w, "%s %s %s\n", Green.Sprint("✓"), res.Path,
			Dim.Sprintf("(%d run, %s)", res.Executed, elapsed(res.Duration)))
	case runner.StatusUpdated:
		fmt.Fprintf(w, "%s %s %s\n", Yellow.Sprint("↻"), res.Path, Yellow.Sprint("updated, re-run to verify"))
	case runner.StatusFailed:
		fmt.Fprintf(w, "%s %s\n", Red.Sprint("✗"), res.Path)
		var me *snapdown.MismatchError
		if errors.As(res.Err, &me) {
			for _, m := range me.Mismatches {
				Mismatch(w, m)
			}
		}
	default:
		fmt.Fprintf(w, "%s %s %s\n", Red.Sprint("!"), res.Path, Red.Sprint(res.Err))
	}
}

// Mismatch prints one mismatching block as an indented diff.
func Mismatch(w io.Writer, m snapdown.Mismatch) {
	fmt.Fprintf(w, "    %s %s\n", Bold.Sprintf("line %d", m.Line), Dim.Sprintf("(%s) -expected +actual", m.Lang))
	for _, line := range strings.Split(strings.TrimRight(m.Diff(), "\n"), "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "-"):
			line = Red.Sprint(line)
		case strings.HasPrefix(trimmed, "+"):
			line = Green.Sprint(line)
		}
		fmt.Fprintf(w, "      %s\n", line)
	}
}

// Summary prints a one-line tally of results.
func Summary(w io.Writer, results []runner.FileResult, d time.Duration) {
	counts := make(map[runner.Status]int)
	for _, res := range results {
		counts[res.Status]++
	}
	line := fmt.Sprintf("%d passed, %d updated, %d failed, %d errors in %s",
		counts[runner.StatusPassed], counts[runner.StatusUpdated],
		counts[runner.StatusFailed], counts[runner.StatusError], elapsed(d))
	if counts[runner.StatusPassed] == len(results) {
		fmt.Fprintf(w, "\n%s\n", color.New(color.FgGreen, color.Bold).Sprint(line))
		return
	}
	fmt.Fprintf(w, "\n%s\n", Bold.Sprint(line))
}

// Error prints a top-level command error.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", Red.Sprint("error:"), err)
}

// Success prints a highlighted confirmation line.
func Success(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s\n", Green.Sprint("✓ "+msg))
}
