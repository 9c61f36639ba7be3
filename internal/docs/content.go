package docs

const fence = "```"

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with snapdown",
		Content: topicQuickstart,
	},
	{
		Name:    "directives",
		Title:   "Block Directives",
		Summary: "Flags written after a fence's language tag",
		Content: topicDirectives,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: ".snapdown.yaml schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "modes",
		Title:   "Rewrite and Assert Modes",
		Summary: "When files are rewritten, when they are checked, and SNAPDOWN_REFRESH",
		Content: topicModes,
	},
	{
		Name:    "library",
		Title:   "Go Library",
		Summary: "Running snapdown passes from Go tests",
		Content: topicLibrary,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    cd your-project
    snapdown init

   This creates .snapdown.yaml and EXAMPLE.md.

2. Write a source block followed by an empty output block:

    ` + fence + `sh
    echo hello
    ` + fence + `

    ` + fence + `output
    ` + fence + `

3. Fill in the output:

    snapdown check EXAMPLE.md

   The file is rewritten and the command exits non-zero so that the
   new content gets reviewed.

4. Verify:

    snapdown check EXAMPLE.md

CLI
---

  snapdown check [files...]          Check files (default: config include patterns)
  snapdown check --refresh           Regenerate every output block
  snapdown check --jobs N            Check up to N files at once
  snapdown check --config PATH       Use PATH instead of searching for .snapdown.yaml
  snapdown blocks <file>             List the blocks of a file
  snapdown init                      Write .snapdown.yaml and EXAMPLE.md
  snapdown docs                      List documentation topics
  snapdown docs <topic>              Show a documentation topic

Files may be given as doublestar globs, e.g. 'docs/**/*.md'.
`

const topicDirectives = `Block Directives
================

Everything after the first space of a fence header is a list of
directives:

    ` + fence + `sh --timeout=30s --stderr

Tokens are separated by spaces. Unknown directives are an error and stop
the check of that file before anything runs. The header is written back
exactly as it was found, whatever the directives parsed to.

  --draft         Replace the body with the computed output instead of
                  comparing against it. Any draft block puts the whole
                  file into rewrite mode.
  --skip          Do not execute this source block.
  --stderr        Capture stderr together with stdout.
  --timeout=DUR   Execution limit for this block (e.g. 500ms, 2m),
                  overriding the runner's timeout.

Directives that take a value accept both --name=value and --name value.
`

const topicConfig = `Configuration Reference
=======================

snapdown looks for .snapdown.yaml in the working directory and its
parents. Unknown fields are rejected.

  output: output        Lang of output blocks (default "output")
  shell: bash           Shell used to run commands (default "bash")
  include:              Files checked when none are given
    - "**/*.md"
  runners:
    - lang: sh          Source blocks with this lang are executed
      run: bash         Command run via "$shell -c"; block body on stdin
      timeout: 10       Seconds (default 10)
      stderr: false     Capture stderr as well
      env:              Extra environment variables
        GREETING: hi

The run command may reference $FILE, $DIR, $LANG and $BLOCK. Other
$references are left for the shell. Commands run in the directory of the
markdown file and see SNAPDOWN_FILE, SNAPDOWN_DIR, SNAPDOWN_LANG and
SNAPDOWN_BLOCK in their environment.

The output of a source block becomes the expected body of the next
output block. A non-zero exit status is appended as "[exit status N]".
`

const topicModes = `Rewrite and Assert Modes
========================

Each check of a file is one pass:

1. The file is split into blocks.
2. Every source block is executed.
3. If any block is --draft or has an empty body, the whole file is
   regenerated: draft and empty blocks receive their computed output,
   every other block is written back unchanged. The check reports
   "updated, re-run to verify" and fails.
4. Otherwise every computed output is compared with the recorded body.
   All differences are reported, each with a diff.

Setting SNAPDOWN_REFRESH (to any value) or passing --refresh treats every
block as --draft, regenerating all recorded output in one pass.

Text after the last block is kept; a missing final newline is added.
`

const topicLibrary = `Go Library
==========

The snapdown package runs passes with your own function computing each
block's output:

    err := snapdown.Run("testdata/parse.md", snapdown.Options{}, func(blocks []*snapdown.Block[snapdown.NoExtension]) {
        for _, b := range blocks {
            b.SetResult(render(b.Text))
        }
    })

From a test, snaptest.Run reports the outcome on testing.TB and honours
SNAPDOWN_REFRESH:

    snaptest.Run(t, "testdata/parse.md", func(blocks []*snapdown.Block[Syntax]) { ... })

Extra directives are declared on the type parameter:

    type Syntax struct {
        Trivia bool ` + "`directive:\"trivia\"`" + `
    }

SetResult may be called once per block. Run returns nil, an error
matching snapdown.ErrUpdated, or a *snapdown.MismatchError.
`
