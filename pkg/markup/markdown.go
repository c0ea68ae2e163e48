package markup

import (
	"strings"

	"github.com/mithrel/mdiu/pkg/doc"
)

// Markdown renders Markdown 1.0.1. Blocks are separated by a blank line;
// members of a run of links or list items are written as consecutive
// bullet lines, with a blank line only after the run. A lone link is
// written as a paragraph.
//
// Bare links use [uri](uri) since the autolink syntax does not accept
// relative URIs.
type Markdown struct{}

func (Markdown) sealed() {}

const codeIndent = "    "

func (Markdown) Render(blocks []doc.Block) string {
	var (
		b     strings.Builder
		links listState
		items listState
	)
	for i, block := range blocks {
		next := peek(blocks, i)
		switch block := block.(type) {
		case doc.Text:
			b.WriteString(block.Content.String())
			b.WriteString("\n\n")
		case doc.Link:
			links = links.next(isLink(next))
			writeRun(&b, links, "", "\n", func(member bool) {
				if member {
					b.WriteString("* ")
				}
				b.WriteString("[" + linkLabel(block) + "](" + block.URI() + ")\n")
				if !member {
					b.WriteByte('\n')
				}
			})
		case doc.Heading:
			b.WriteString(strings.Repeat("#", depth(block.Level)))
			b.WriteByte(' ')
			b.WriteString(block.Content.String())
			b.WriteString("\n\n")
		case doc.ListItem:
			items = items.next(isListItem(next))
			writeRun(&b, items, "", "\n", func(member bool) {
				b.WriteString("* " + block.Content.String() + "\n")
				if !member {
					b.WriteByte('\n')
				}
			})
		case doc.Quote:
			b.WriteString("> ")
			b.WriteString(block.Content.String())
			b.WriteString("\n\n")
		case doc.Preformatted:
			b.WriteString(indentLines(block.Text()))
			b.WriteString("\n\n")
		case doc.Empty:
		}
	}

	// Every block ends in a blank line; the document ends in a single newline.
	out := b.String()
	if strings.HasSuffix(out, "\n\n") {
		out = out[:len(out)-1]
	}
	return out
}

// indentLines prefixes each line of text with codeIndent.
func indentLines(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = codeIndent + strings.TrimSuffix(line, "\r")
	}
	return strings.Join(lines, "\n")
}
