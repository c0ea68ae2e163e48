package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdiu/internal/present"
	"github.com/mithrel/mdiu/internal/source"
	"github.com/mithrel/mdiu/pkg/doc"
	"github.com/mithrel/mdiu/pkg/markup"
)

func newRenderCmd() *cobra.Command {
	var output string
	var digest bool
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML document description",
		Long: `Render a YAML document description (read from stdin when no file is given).

The format comes from --format or the "format" config key. Output goes to
--output, to output_dir/<name><ext> when output_dir is configured, or to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			path := argPath(args)
			blocks, err := loadBlocks(cmd, path)
			if err != nil {
				return err
			}
			opts := present.Options{Format: app.Format, Digest: digest}

			dest := output
			if dest == "" && app.OutputDir != "" && !digest {
				dest = filepath.Join(app.OutputDir, outputName(path, app.Format))
			}
			if dest == "" || dest == "-" {
				return writeOut(cmd, app.Pager, func(w io.Writer) error {
					return present.Render(w, blocks, opts)
				})
			}

			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := present.Render(&buf, blocks, opts); err != nil {
				return err
			}
			if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
				return err
			}
			app.Log.Printf("render: wrote path=%s format=%s bytes=%d", dest, app.Format, buf.Len())
			return nil
		},
	}
	cmd.Flags().String("format", "", "output format: gemtext, html or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&digest, "digest", false, "print the BLAKE3 digest of the output instead of the output")
	return cmd
}

func argPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// loadBlocks decodes and validates the description at path, or stdin.
func loadBlocks(cmd *cobra.Command, path string) ([]doc.Block, error) {
	var (
		d   doc.Document
		err error
	)
	if path == "" || path == "-" {
		d, err = source.Decode(cmd.InOrStdin())
	} else {
		d, err = source.DecodeFile(path)
	}
	if err != nil {
		return nil, err
	}
	blocks, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return blocks, nil
}

// outputName derives a file name from the source path and the format's extension.
func outputName(path string, f markup.Format) string {
	base := "document"
	if path != "" && path != "-" {
		base = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return base + f.Extension()
}
