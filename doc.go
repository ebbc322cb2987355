// Package tblwriter renders an in-memory table in multiple output formats.
//
// Supported formats are CSV, TSV, LaTeX, Markdown, HTML, Text, JSON, JSON
// Lines, YAML and TOML. Every writer embeds a [Table] holding the header, the rows, the
// per-column styles and the format flags its constructor presets:
//
//	w := tblwriter.NewMarkdownWriter()
//	w.Name = "sample"
//	w.Header = []string{"id", "name", "score"}
//	w.Rows = [][]any{{1, "alice", 9.5}, {2, "bob", 7.25}}
//	err := w.WriteTable()
//
// Use [NewWriter] to pick a writer from a [Format], for example one parsed
// from a CLI flag with [ParseFormat].
//
// # Cell values
//
// Cells may hold any Go value. Each cell is classified into a [Kind]: nil is
// empty, integers and floats are numbers, strings holding numbers, "true",
// "false", "inf" or "nan" are coerced, and [time.Time] is a date-time. A
// column takes the kind shared by all its cells; integers mixed with floats
// make a float column whose cells share one precision. Anything else falls
// back to a string column.
//
// # Styles
//
// A [Style] sets alignment, font size, font weight and thousand separator
// for one column. Each format renders the parts it can express through its
// [Styler] and drops the rest. Numbers align right and everything else left
// unless the style says otherwise. Styles can be read from YAML with
// [LoadStyles].
//
// # Formats
//
//   - CSV and TSV quote strings and times and drop a blank header. They
//     support split writes with [Table.WriteTableIter], as does JSON Lines.
//   - LaTeX writes an array environment with \verb around headers and
//     strings that contain whitespace or special characters.
//   - Markdown writes a GitHub-flavored table and requires a header.
//   - HTML writes a table with inline text-align styles.
//   - Text writes a bordered or plain fixed-width table; see [BorderStyle].
//   - JSON, JSON Lines, YAML and TOML write records keyed by header. TOML
//     also requires a table name.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrEmptyTableData] — neither a header nor rows
//   - [ErrEmptyHeader] — the format needs a header
//   - [ErrEmptyTableName] — the format needs a table name
//   - [ErrConfiguration] — an unknown style value or an unusable writer
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrSplitWriteUnsupported] — the format cannot write a table in chunks
package tblwriter
