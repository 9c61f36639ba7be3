// Package snapdown implements literate snapshot tests: markdown files whose
// fenced code blocks record example invocations and their expected output.
//
// A test calls Run with a function that computes the actual output of each
// block. When a block carries the --draft directive, has an empty body, or
// Options.ForceDraft is set, Run regenerates the file with the computed
// output and reports ErrUpdated. Otherwise it compares the computed output
// with the recorded text and reports every difference.
//
//	```sh --draft
//	echo hello
//	```
//
// Callers add directives of their own through the type parameter of Block:
//
//	type Syntax struct {
//		Trivia bool `directive:"trivia"`
//	}
//
//	err := snapdown.Run("testdata/parse.md", snapdown.Options{}, func(blocks []*snapdown.Block[Syntax]) {
//		for _, b := range blocks {
//			b.SetResult(dump(b.Text, b.Args.Ext.Trivia))
//		}
//	})
package snapdown
