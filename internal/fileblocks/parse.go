package fileblocks

import "strings"

// Delimiter opens and closes a fenced block.
const Delimiter = "```"

// Fence is one fenced block cut out of a document. Every field is a
// substring of the scanned content.
type Fence struct {
	Comments   string // text between the previous closing fence and this opening fence
	Lang       string // e.g. "rust"
	Directives string // rest of the header line, trimmed
	Text       string // body without the newline that precedes the closing fence
	Line       int    // 1-based line of the opening fence, relative to the scanned content
}

// Next cuts the first fenced block out of content and returns it together
// with the unconsumed remainder. It recognizes headers like:
//
//	```rust
//	```rust --draft --trivia
//	```
//
// ok is false when content holds no further complete block: no opening
// delimiter, a header without a newline, or no closing delimiter. That is
// the end of parseable content, not an error.
func Next(content string) (f Fence, rest string, ok bool) {
	comments, after, found := strings.Cut(content, Delimiter)
	if !found {
		return Fence{}, content, false
	}
	header, after, found := strings.Cut(after, "\n")
	if !found {
		return Fence{}, content, false
	}
	text, rest, found := strings.Cut(after, Delimiter)
	if !found {
		return Fence{}, content, false
	}

	lang, directives, _ := strings.Cut(header, " ")
	text = strings.TrimSuffix(text, "\n")

	return Fence{
		Comments:   comments,
		Lang:       lang,
		Directives: strings.TrimSpace(directives),
		Text:       text,
		Line:       strings.Count(comments, "\n") + 1,
	}, rest, true
}

// Scan cuts every block out of content in order of appearance. tail is
// whatever follows the last closing fence (or the whole content when no
// block was found). Line numbers are relative to the start of content.
func Scan(content string) (fences []Fence, tail string) {
	line := 0
	for {
		f, rest, ok := Next(content)
		if !ok {
			return fences, content
		}
		f.Line += line
		line = f.Line - 1 + strings.Count(content[len(f.Comments):len(content)-len(rest)], "\n")
		fences = append(fences, f)
		content = rest
	}
}
