package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/snapdown/internal/config"
	"github.com/jorge-barreto/snapdown/internal/ux"
)

var configTemplate = `# Blocks whose lang matches a runner are executed; their output is checked
# against the next block tagged with the output lang.
output: output
shell: bash
include:
  - "**/*.md"

runners:
  - lang: sh
    run: bash
    timeout: 10
`

var exampleTemplate = "# Example\n\n" +
	"Each `sh` block runs with its body on stdin. The `output` block after it\n" +
	"records what it printed. Empty output blocks are filled in by `snapdown check`.\n\n" +
	"```sh\necho \"hello from snapdown\"\n```\n\n" +
	"```output\n```\n"

// Init writes a starter config and an example document into targetDir.
func Init(w io.Writer, targetDir string) error {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}

	examplePath := filepath.Join(targetDir, "EXAMPLE.md")
	if _, err := os.Stat(examplePath); err == nil {
		return fmt.Errorf("EXAMPLE.md already exists in %s", targetDir)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}
	if err := os.WriteFile(examplePath, []byte(exampleTemplate), 0644); err != nil {
		return fmt.Errorf("writing EXAMPLE.md: %w", err)
	}

	fmt.Fprintln(w)
	ux.Success(w, "Initialized snapdown")
	fmt.Fprintf(w, "\n  Created:\n")
	fmt.Fprintf(w, "    %s — runner configuration\n", ux.Cyan.Sprint(config.FileName))
	fmt.Fprintf(w, "    %s      — example document\n\n", ux.Cyan.Sprint("EXAMPLE.md"))
	fmt.Fprintf(w, "  Next steps:\n")
	fmt.Fprintf(w, "    1. Run %s to fill in the output block\n", ux.Cyan.Sprint("snapdown check EXAMPLE.md"))
	fmt.Fprintf(w, "    2. Run it again to verify the recorded output\n\n")

	return nil
}
