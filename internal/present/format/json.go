package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/mdiu/pkg/doc"
)

type jsonSummary struct {
	Hash   string         `json:"hash"`
	Blocks []BlockSummary `json:"blocks"`
}

func WriteJSONSummary(w io.Writer, blocks []doc.Block, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(jsonSummary{Hash: doc.Hash(blocks), Blocks: summarize(blocks)})
}
