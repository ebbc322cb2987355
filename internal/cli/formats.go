package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/tblwriter"
)

// formatsCommand lists the output formats, marking those that support split
// writes.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range tblwriter.Formats() {
				w, err := tblwriter.NewWriter(f)
				if err != nil {
					return err
				}
				line := f.String()
				if w.SupportSplitWrite() {
					line += " (split write)"
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
