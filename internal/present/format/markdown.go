package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/mithrel/mdiu/pkg/doc"
	"github.com/mithrel/mdiu/pkg/markup"
)

// WritePreview renders blocks as Markdown and styles it with glamour.
func WritePreview(w io.Writer, blocks []doc.Block, style string, width int) error {
	md := markup.Markdown{}.Render(blocks)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
