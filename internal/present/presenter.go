package present

import (
	"io"

	"github.com/mithrel/mdiu/internal/present/format"
	"github.com/mithrel/mdiu/pkg/doc"
	"github.com/mithrel/mdiu/pkg/markup"
)

// Mode selects how a block summary is shown by Inspect.
type Mode int

const (
	ModePlain Mode = iota
	ModeJSON
)

// ParseMode parses "plain" or "json".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "json":
		return ModeJSON, true
	default:
		return ModePlain, false
	}
}

type Options struct {
	Format markup.Format
	// Digest writes the BLAKE3 digest of the output instead of the output.
	Digest bool
}

// Render writes blocks in the chosen format.
func Render(w io.Writer, blocks []doc.Block, opts Options) error {
	f := opts.Format.Formatter()
	if opts.Digest {
		_, err := io.WriteString(w, markup.Digest(f, blocks)+"\n")
		return err
	}
	_, err := io.WriteString(w, markup.Render(f, blocks))
	return err
}

// Inspect writes a per-block summary followed by the document hash.
func Inspect(w io.Writer, blocks []doc.Block, mode Mode, headers bool) error {
	switch mode {
	case ModeJSON:
		return format.WriteJSONSummary(w, blocks, true)
	default:
		return format.WritePlainSummary(w, blocks, headers)
	}
}

// Preview renders blocks as Markdown styled for the terminal.
func Preview(w io.Writer, blocks []doc.Block, style string, width int) error {
	return format.WritePreview(w, blocks, style, width)
}
