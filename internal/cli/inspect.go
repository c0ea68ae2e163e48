package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdiu/internal/present"
)

func newInspectCmd() *cobra.Command {
	var mode string
	var headers bool
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarise the blocks of a document and print its hash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := present.ParseMode(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q (want plain or json)", mode)
			}
			if _, err := getApp(cmd); err != nil {
				return err
			}
			blocks, err := loadBlocks(cmd, argPath(args))
			if err != nil {
				return err
			}
			return present.Inspect(cmd.OutOrStdout(), blocks, m, headers)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "plain", "summary format: plain or json")
	cmd.Flags().BoolVar(&headers, "headers", true, "print column headers in plain output")
	return cmd
}
