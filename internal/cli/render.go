package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bjaus/tblwriter"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format string // output format name
	output string // output file; empty means stdout
	border string // border style for the text format
	ansi   bool   // ANSI styling for the text format
}

// renderCommand creates the render command. The argument is a YAML or TOML
// table document, or "-" to read YAML from stdin.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: string(tblwriter.Markdown)}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format, one of those listed by the formats command")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.border, "border", "", "text border style: ascii (default), rounded, heavy, double, none")
	cmd.Flags().BoolVar(&opts.ansi, "ansi", false, "style bold cells with ANSI escape codes (text format)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) (err error) {
	f, err := tblwriter.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	w, err := tblwriter.NewWriter(f)
	if err != nil {
		return err
	}
	if tw, ok := w.(*tblwriter.TextWriter); ok {
		if tw.Border, err = tblwriter.ParseBorderStyle(opts.border); err != nil {
			return err
		}
		tw.EnableANSI = opts.ansi
	}

	data, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	c.Logger.Debug("read document", "path", input, "size", humanize.Bytes(uint64(len(data))))

	doc, err := decodeDocument(documentKind(input), data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	t := w.Base()
	doc.apply(t)
	t.Logger = c.Logger

	out := cmd.OutOrStdout()
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = file
	}
	t.Output = out

	if err := w.WriteTable(); err != nil {
		return err
	}
	c.Logger.Debug("rendered table", "format", f, "rows", len(doc.Rows))
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
