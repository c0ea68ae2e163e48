// Package markup renders document blocks into gemtext, HTML or Markdown.
//
// Each formatter makes a single forward pass over the blocks with one block
// of lookahead. Formatters keep no state between calls, so a built block
// sequence can be rendered any number of times, in any format, from any
// number of goroutines.
package markup

import (
	"strings"

	"github.com/mithrel/mdiu/pkg/doc"
)

// Formatter turns blocks into markup. The set of formatters is fixed by this
// package; the interface cannot be implemented elsewhere.
type Formatter interface {
	Render(blocks []doc.Block) string
	sealed()
}

// Render formats blocks with f.
func Render(f Formatter, blocks []doc.Block) string {
	return f.Render(blocks)
}

// Format names one of the built-in formatters.
type Format int

const (
	FormatGemtext Format = iota
	FormatHTML
	FormatMarkdown
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatGemtext, FormatHTML, FormatMarkdown}
}

// ParseFormat parses a name like "gemtext", "html" or "markdown".
// File extensions and a few aliases are accepted too.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "gemtext", "gmi", "gemini":
		return FormatGemtext, true
	case "html", "htm":
		return FormatHTML, true
	case "markdown", "md":
		return FormatMarkdown, true
	default:
		return FormatGemtext, false
	}
}

func (f Format) String() string {
	switch f {
	case FormatGemtext:
		return "gemtext"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Extension returns the conventional file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatGemtext:
		return ".gmi"
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	default:
		return ""
	}
}

// Formatter returns the formatter for f. Unknown values fall back to gemtext.
func (f Format) Formatter() Formatter {
	switch f {
	case FormatHTML:
		return HTML{}
	case FormatMarkdown:
		return Markdown{}
	default:
		return Gemtext{}
	}
}

// Render formats blocks in f.
func (f Format) Render(blocks []doc.Block) string {
	return f.Formatter().Render(blocks)
}

// peek returns the block after i, or nil at the end.
func peek(blocks []doc.Block, i int) doc.Block {
	if i+1 < len(blocks) {
		return blocks[i+1]
	}
	return nil
}

func isLink(b doc.Block) bool {
	_, ok := b.(doc.Link)
	return ok
}

func isListItem(b doc.Block) bool {
	_, ok := b.(doc.ListItem)
	return ok
}

// depth clamps a heading level to 1..3.
func depth(l doc.Level) int {
	switch {
	case l < doc.LevelOne:
		return 1
	case l > doc.LevelThree:
		return 3
	default:
		return int(l)
	}
}

// linkLabel returns the label of l, or its URI for bare links.
func linkLabel(l doc.Link) string {
	if label, ok := l.Label(); ok {
		return label.String()
	}
	return l.URI()
}
