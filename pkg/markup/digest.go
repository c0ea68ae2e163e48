package markup

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/mithrel/mdiu/pkg/doc"
)

// Digest renders blocks with f and returns the hex BLAKE3 sum of the output.
// Since rendering is deterministic, equal inputs always give equal digests.
func Digest(f Formatter, blocks []doc.Block) string {
	sum := blake3.Sum256([]byte(f.Render(blocks)))
	return hex.EncodeToString(sum[:])
}
