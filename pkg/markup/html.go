package markup

import (
	"fmt"
	"html"
	"strings"

	"github.com/mithrel/mdiu/pkg/doc"
)

var escape = html.EscapeString

// HTML renders an HTML fragment. Runs of two or more links, or of two or
// more list items, are wrapped in <ul>; a lone link becomes a paragraph.
// Text and attribute values are escaped.
//
// The alt caption of preformatted text is not emitted.
type HTML struct{}

func (HTML) sealed() {}

func (HTML) Render(blocks []doc.Block) string {
	var (
		b     strings.Builder
		links listState
		items listState
	)
	for i, block := range blocks {
		next := peek(blocks, i)
		switch block := block.(type) {
		case doc.Text:
			fmt.Fprintf(&b, "<p>%s</p>\n", escape(block.Content.String()))
		case doc.Link:
			links = links.next(isLink(next))
			writeRun(&b, links, "<ul>\n", "</ul>\n", func(member bool) {
				tag := "p"
				if member {
					tag = "li"
				}
				fmt.Fprintf(&b, "<%[1]s><a href=\"%[2]s\">%[3]s</a></%[1]s>\n",
					tag, escape(block.URI()), escape(linkLabel(block)))
			})
		case doc.Heading:
			n := depth(block.Level)
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", n, escape(block.Content.String()), n)
		case doc.ListItem:
			items = items.next(isListItem(next))
			writeRun(&b, items, "<ul>\n", "</ul>\n", func(bool) {
				fmt.Fprintf(&b, "<li>%s</li>\n", escape(block.Content.String()))
			})
		case doc.Quote:
			fmt.Fprintf(&b, "<blockquote>%s</blockquote>\n", escape(block.Content.String()))
		case doc.Preformatted:
			fmt.Fprintf(&b, "<pre>\n%s\n</pre>\n", escape(block.Text()))
		case doc.Empty:
		}
	}
	return b.String()
}
