package format

import (
	"strconv"

	"github.com/mithrel/mdiu/pkg/doc"
)

// BlockSummary is a flat view of one block.
type BlockSummary struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`
	URI   string `json:"uri,omitempty"`
	Label string `json:"label,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

func summarize(blocks []doc.Block) []BlockSummary {
	out := make([]BlockSummary, 0, len(blocks))
	for i, b := range blocks {
		s := BlockSummary{Index: i, Kind: b.Kind().String()}
		switch b := b.(type) {
		case doc.Text:
			s.Text = b.Content.String()
		case doc.Link:
			s.URI = b.URI()
			if label, ok := b.Label(); ok {
				s.Label = label.String()
			}
		case doc.Heading:
			s.Level = int(b.Level)
			s.Text = b.Content.String()
		case doc.ListItem:
			s.Text = b.Content.String()
		case doc.Quote:
			s.Text = b.Content.String()
		case doc.Preformatted:
			s.Text = b.Text()
			if alt, ok := b.Alt(); ok {
				s.Alt = alt.String()
			}
		case doc.Empty:
		}
		out = append(out, s)
	}
	return out
}

// detail is the single column shown for a block in plain output.
func (s BlockSummary) detail() string {
	switch {
	case s.URI != "" && s.Label != "":
		return s.URI + " " + s.Label
	case s.URI != "":
		return s.URI
	case s.Level > 0:
		return "h" + strconv.Itoa(s.Level) + " " + s.Text
	case s.Alt != "":
		return "[" + s.Alt + "] " + s.Text
	default:
		return s.Text
	}
}
