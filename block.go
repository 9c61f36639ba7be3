package snapdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/jorge-barreto/snapdown/internal/directive"
	"github.com/jorge-barreto/snapdown/internal/fileblocks"
)

// Arguments is the parsed form of a block's directives. Ext receives the
// caller's own directives; its fields are declared with `directive` tags
// and must not reuse the name "draft".
type Arguments[E any] struct {
	Draft bool `directive:"draft" help:"rewrite this block with the computed result"`
	Ext   E    `directive:",flatten"`
}

// NoExtension is the extension type for callers without directives of
// their own.
type NoExtension struct{}

// Block is one fenced region of a document. Comments, Lang, Directives and
// Text are views into the content that was parsed and render back
// unchanged; only the result cell is written during a pass.
type Block[E any] struct {
	Comments   string
	Lang       string
	Directives string
	Args       Arguments[E]
	Text       string
	Line       int

	result resultCell
}

// resultCell holds a value that may be stored once and taken once.
type resultCell struct {
	value  string
	stored bool
	taken  bool
}

// ParseBlock cuts the first block out of content. ok is false when content
// holds no further complete block. A block whose directives cannot be
// applied is reported as an error together with ok == false.
func ParseBlock[E any](content string) (rest string, b *Block[E], ok bool, err error) {
	f, rest, ok := fileblocks.Next(content)
	if !ok {
		return content, nil, false, nil
	}
	b, err = newBlock[E](f)
	if err != nil {
		return content, nil, false, err
	}
	return rest, b, true, nil
}

func newBlock[E any](f fileblocks.Fence) (*Block[E], error) {
	b := &Block[E]{
		Comments:   f.Comments,
		Lang:       f.Lang,
		Directives: f.Directives,
		Text:       f.Text,
		Line:       f.Line,
	}
	if err := directive.Parse(f.Directives, &b.Args); err != nil {
		return nil, fmt.Errorf("line %d: %w", f.Line, err)
	}
	return b, nil
}

// Parse cuts every block out of content, in file order. tail is the text
// after the last block. Scanning stops silently at the first malformed
// fence; a directive error aborts parsing.
func Parse[E any](content string) (blocks []*Block[E], tail string, err error) {
	fences, tail := fileblocks.Scan(content)
	blocks = make([]*Block[E], 0, len(fences))
	for _, f := range fences {
		b, err := newBlock[E](f)
		if err != nil {
			return nil, "", err
		}
		blocks = append(blocks, b)
	}
	return blocks, tail, nil
}

// SetResult stores the freshly computed output of the block. It panics if
// a result was already stored.
func (b *Block[E]) SetResult(s string) {
	if b.result.stored {
		panic(fmt.Sprintf("snapdown: result for block at line %d stored twice", b.Line))
	}
	b.result.value = s
	b.result.stored = true
}

// HasResult reports whether a result is stored and not yet taken.
func (b *Block[E]) HasResult() bool {
	return b.result.stored && !b.result.taken
}

// TakeResult consumes the stored result. It panics when called a second
// time for the same block. A result taken inside a Run callback is no
// longer rendered or compared by that pass.
func (b *Block[E]) TakeResult() (string, bool) {
	if b.result.taken {
		panic(fmt.Sprintf("snapdown: result for block at line %d taken twice", b.Line))
	}
	b.result.taken = true
	return b.result.value, b.result.stored
}

// NeedsUpdate reports whether the block puts its pass into rewrite mode.
func (b *Block[E]) NeedsUpdate() bool {
	return b.Args.Draft || b.Text == ""
}

// Body consumes the result cell and returns the text the block renders
// with: the result for draft or empty blocks that have one, the recorded
// text otherwise.
func (b *Block[E]) Body() string {
	if !b.HasResult() {
		return b.Text
	}
	result, _ := b.TakeResult()
	if b.NeedsUpdate() {
		return result
	}
	return b.Text
}

// WriteTo renders the block, consuming its result cell.
func (b *Block[E]) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(b.Comments)
	sb.WriteString(fileblocks.Delimiter)
	sb.WriteString(b.Lang)
	if b.Directives != "" {
		sb.WriteByte(' ')
		sb.WriteString(b.Directives)
	}
	sb.WriteByte('\n')
	sb.WriteString(b.Body())
	sb.WriteByte('\n')
	sb.WriteString(fileblocks.Delimiter)
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Render renders every block in order followed by tail, consuming every
// result cell. tail is written back as is, blank lines included; a newline
// is added only when the output would otherwise not end with one.
func Render[E any](blocks []*Block[E], tail string) string {
	var sb strings.Builder
	for _, b := range blocks {
		b.WriteTo(&sb)
	}
	sb.WriteString(tail)
	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}
