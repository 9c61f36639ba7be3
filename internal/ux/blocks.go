package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/jorge-barreto/snapdown/internal/config"
	"github.com/jorge-barreto/snapdown/internal/runner"
)

// role describes what the check command does with a block.
func role(cfg *config.Config, b *runner.Block) string {
	switch {
	case b.Lang == cfg.Output:
		return "output"
	case cfg.RunnerFor(b.Lang) == nil:
		return "-"
	case b.Args.Ext.Skip:
		return "skip"
	default:
		return "run"
	}
}

func summarize(text string) string {
	first, _, more := strings.Cut(text, "\n")
	if len(first) > 50 {
		first = first[:47] + "..."
	} else if more {
		first += " …"
	}
	return first
}

// RenderBlocks prints the parsed blocks of a file.
func RenderBlocks(w io.Writer, path string, cfg *config.Config, blocks []*runner.Block) {
	fmt.Fprintf(w, "%s %s\n", Bold.Sprint("File:"), path)
	if len(blocks) == 0 {
		fmt.Fprintf(w, "  %s\n", Dim.Sprint("(no blocks)"))
		return
	}
	fmt.Fprintln(w)
	for i, b := range blocks {
		lang := b.Lang
		if lang == "" {
			lang = "(none)"
		}
		var flags []string
		if b.Args.Draft {
			flags = append(flags, Yellow.Sprint("draft"))
		}
		if b.Text == "" {
			flags = append(flags, Yellow.Sprint("empty"))
		}
		fmt.Fprintf(w, "  %s  %s  %-10s %-6s %s\n",
			Dim.Sprintf("%3d", i+1), Dim.Sprintf("L%-4d", b.Line), lang, role(cfg, b), strings.Join(flags, ","))
		if b.Directives != "" {
			fmt.Fprintf(w, "       %s\n", Cyan.Sprint(b.Directives))
		}
		if b.Text != "" {
			fmt.Fprintf(w, "       %s\n", Dim.Sprint(summarize(b.Text)))
		}
	}
	fmt.Fprintln(w)
}
