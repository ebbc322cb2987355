// Package cli implements the tblwrite command-line interface.
//
// tblwrite reads a table document (YAML or TOML) and renders it with one of
// the tblwriter formats. The CLI is built using cobra and logs through
// charmbracelet/log; --verbose (-v) switches to debug-level logging.
//
// # Commands
//
//   - render: Render a table document to stdout or a file
//   - formats: List the supported output formats
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "tblwrite",
		Short:        "tblwrite renders tables as CSV, LaTeX, Markdown, HTML, text and more",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.formatsCommand())

	return root
}
