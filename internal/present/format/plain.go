package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mithrel/mdiu/pkg/doc"
)

// TSV columns: index, kind, detail
var headerLine = "index\tkind\tdetail\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\r", "\\r")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// WritePlainSummary writes one aligned row per block and a final hash line.
func WritePlainSummary(w io.Writer, blocks []doc.Block, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, s := range summarize(blocks) {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Index, s.Kind, esc(s.detail()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "hash: %s\n", doc.Hash(blocks))
	return err
}
