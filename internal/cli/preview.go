package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdiu/internal/present"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Show a document as styled Markdown in the terminal",
		Args:  cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			annotationFlagKeys: "style=preview.style,width=preview.word_wrap",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			blocks, err := loadBlocks(cmd, argPath(args))
			if err != nil {
				return err
			}
			width := app.PreviewWrap
			if width == 0 {
				width = 80
				if w, ok := terminalWidth(cmd.OutOrStdout()); ok {
					width = w
				}
			}
			app.Log.Printf("preview: style=%s width=%d blocks=%d", app.PreviewStyle, width, len(blocks))
			return writeOut(cmd, app.Pager, func(w io.Writer) error {
				return present.Preview(w, blocks, app.PreviewStyle, width)
			})
		},
	}
	cmd.Flags().String("style", "", "glamour style (dark, light, dracula, notty, ...)")
	cmd.Flags().Int("width", 0, "wrap width; 0 uses the terminal width")
	return cmd
}
