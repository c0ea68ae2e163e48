package doc

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the block sequence.
// Each block contributes its kind followed by its fields, every field
// terminated by a null byte; optional fields absent are written as a lone
// 0x01 marker so "no label" and "empty label" differ.
func Hash(blocks []Block) string {
	h := blake3.New()

	field := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	optional := func(c Content, ok bool) {
		if !ok {
			h.Write([]byte{1, 0})
			return
		}
		field(c.String())
	}

	for _, b := range blocks {
		field(b.Kind().String())
		switch b := b.(type) {
		case Text:
			field(b.Content.String())
		case Link:
			field(b.URI())
			optional(b.Label())
		case Heading:
			field(strconv.Itoa(int(b.Level)))
			field(b.Content.String())
		case ListItem:
			field(b.Content.String())
		case Quote:
			field(b.Content.String())
		case Preformatted:
			field(b.Text())
			optional(b.Alt())
		case Empty:
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
