package markup

import (
	"strings"

	"github.com/mithrel/mdiu/pkg/doc"
)

// Gemtext renders the line-oriented gemini format. Every block is one line,
// except preformatted text which is fenced. There is no list grouping.
type Gemtext struct{}

func (Gemtext) sealed() {}

func (Gemtext) Render(blocks []doc.Block) string {
	var b strings.Builder
	for _, block := range blocks {
		switch block := block.(type) {
		case doc.Text:
			b.WriteString(block.Content.String())
		case doc.Link:
			b.WriteString("=> ")
			b.WriteString(block.URI())
			if label, ok := block.Label(); ok {
				b.WriteByte(' ')
				b.WriteString(label.String())
			}
		case doc.Heading:
			b.WriteString(strings.Repeat("#", depth(block.Level)))
			b.WriteByte(' ')
			b.WriteString(block.Content.String())
		case doc.ListItem:
			b.WriteString("* ")
			b.WriteString(block.Content.String())
		case doc.Quote:
			b.WriteString("> ")
			b.WriteString(block.Content.String())
		case doc.Preformatted:
			b.WriteString("```")
			if alt, ok := block.Alt(); ok {
				b.WriteString(alt.String())
			}
			b.WriteByte('\n')
			b.WriteString(block.Text())
			b.WriteString("\n```")
		case doc.Empty:
		}
		b.WriteByte('\n')
	}
	return b.String()
}
