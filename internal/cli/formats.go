package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mithrel/mdiu/pkg/markup"
)

var formatNameStyle = lipgloss.NewStyle().Bold(true).Width(10)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their file extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range markup.Formats() {
				mark := ""
				if f == app.Format {
					mark = " (default)"
				}
				if _, err := fmt.Fprintf(out, "%s %s%s\n", formatNameStyle.Render(f.String()), f.Extension(), mark); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
