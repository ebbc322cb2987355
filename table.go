package tblwriter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Table is the state shared by every writer: the data to render, the output
// stream and the format flags a concrete writer presets in its constructor.
// Fields may be changed freely between write calls; nothing derived from
// them is cached.
type Table struct {
	// Name is the table caption. Formats without captions ignore it.
	Name string
	// Header holds the column names. A nil, empty or all-blank header is
	// absent.
	Header []string
	// Rows holds the cell values. Rows shorter than the column count are
	// padded with nil; longer rows are truncated.
	Rows [][]any
	// Styles holds one style per column. Zero styles, missing entries and
	// entries past the last column fall back to DefaultStyle.
	Styles []Style
	// DefaultStyle applies to columns without an explicit style.
	DefaultStyle Style

	// Output receives WriteTable and WriteNullLine output. Nil means
	// os.Stdout.
	Output io.Writer
	// Logger receives debug events. Nil disables logging.
	Logger *log.Logger

	// ColumnDelimiter separates cells within a row. Writers with their own
	// row grammar (HTML, Text) ignore it.
	ColumnDelimiter string
	// Padding pads every cell to its column width.
	Padding bool
	// HeaderSeparator draws the rule between header and body.
	HeaderSeparator bool
	// Indent prefixes header and body rows.
	Indent string
	// NullLineAfterTable appends a blank line after the table.
	NullLineAfterTable bool
	// RemoveLineBreak replaces line breaks inside cells with spaces.
	RemoveLineBreak bool
	// QuoteFlags selects the cell kinds wrapped in double quotes. The
	// KindString flag also applies to header cells.
	QuoteFlags map[Kind]bool

	// InfValue and NaNValue override how special floats are written.
	InfValue string
	NaNValue string
	// TimeLayout overrides the time.Time layout.
	TimeLayout string

	d dialect
}

// dialect is implemented by every concrete writer.
type dialect interface {
	format() Format
	supportSplitWrite() bool
}

// gridDialect renders a table line by line. The base pipeline computes the
// column layout and asks the dialect for each fragment.
type gridDialect interface {
	dialect
	styler() Styler
	escape(s string) string
	minWidth() int
	headerItem(col *column, text string) string
	valueItem(col *column, c *cell, text string) string
	openingRows(lay *layout) []string
	headerRows(lay *layout) []string
	headerSeparatorRows(lay *layout) []string
	valueRows(lay *layout, items []string) []string
	valueRowSeparatorRows(lay *layout) []string
	closingRows(lay *layout) []string
}

// encodeDialect renders the whole table through a data encoder.
type encodeDialect interface {
	dialect
	encode(w io.Writer, rec *records) error
}

// validator rejects tables the format cannot express.
type validator interface {
	validate(header []string) error
}

var discard = log.New(io.Discard)

func (t *Table) logger() *log.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return discard
}

func (t *Table) output() io.Writer {
	if t.Output != nil {
		return t.Output
	}
	return os.Stdout
}

// Base returns t. It gives generic callers access to the table state behind
// a [Writer].
func (t *Table) Base() *Table { return t }

// Format reports the writer's output format.
func (t *Table) Format() Format {
	if t.d == nil {
		return ""
	}
	return t.d.format()
}

// SupportSplitWrite reports whether the writer can emit one table across
// several WriteTableIter chunks.
func (t *Table) SupportSplitWrite() bool {
	return t.d != nil && t.d.supportSplitWrite()
}

// WriteTable renders the table and writes it to Output in a single write.
// Nothing is written when rendering fails.
func (t *Table) WriteTable() error {
	var buf bytes.Buffer
	if err := t.render(&buf, t.Header, t.Rows, true); err != nil {
		return err
	}
	_, err := t.output().Write(buf.Bytes())
	return err
}

// Dumps renders the table and returns it. The result is byte for byte what
// WriteTable would write.
func (t *Table) Dumps() (string, error) {
	var sb strings.Builder
	if err := t.render(&sb, t.Header, t.Rows, true); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteNullLine writes a single blank line to Output, for separating
// consecutive tables on one stream.
func (t *Table) WriteNullLine() error {
	_, err := fmt.Fprintln(t.output())
	return err
}

func (t *Table) render(w io.Writer, header []string, rows [][]any, withHeader bool) error {
	if t.d == nil {
		return fmt.Errorf("%w: writer not created by a constructor", ErrConfiguration)
	}
	if isBlankHeader(header) && isBlankRows(rows) {
		return fmt.Errorf("%w: format %q", ErrEmptyTableData, t.d.format())
	}
	if v, ok := t.d.(validator); ok {
		if err := v.validate(header); err != nil {
			return err
		}
	}
	t.logger().Debug("rendering table",
		"format", t.d.format(),
		"name", t.Name,
		"columns", columnCount(header, rows),
		"rows", len(rows),
	)
	switch d := t.d.(type) {
	case encodeDialect:
		return d.encode(w, t.records(header, rows))
	case gridDialect:
		return t.renderGrid(w, d, header, rows, withHeader)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, t.d.format())
	}
}

func (t *Table) renderGrid(w io.Writer, d gridDialect, header []string, rows [][]any, withHeader bool) error {
	lay := t.layout(d, header, rows)
	if !withHeader {
		lay.header = nil
	}
	lines := d.openingRows(lay)
	if lay.header != nil {
		lines = append(lines, d.headerRows(lay)...)
		if t.HeaderSeparator {
			lines = append(lines, d.headerSeparatorRows(lay)...)
		}
	}
	for i, items := range lay.rows {
		if i > 0 {
			lines = append(lines, d.valueRowSeparatorRows(lay)...)
		}
		lines = append(lines, d.valueRows(lay, items)...)
	}
	lines = append(lines, d.closingRows(lay)...)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if t.NullLineAfterTable {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Default hooks. Concrete writers embed Table and shadow the ones their
// format changes.

func (t *Table) styler() Styler { return NullStyler{} }

func (t *Table) escape(s string) string { return s }

func (t *Table) minWidth() int { return 0 }

func (t *Table) headerItem(_ *column, text string) string { return text }

func (t *Table) valueItem(_ *column, _ *cell, text string) string { return text }

func (t *Table) openingRows(*layout) []string { return nil }

func (t *Table) headerRows(lay *layout) []string { return []string{t.joinRow(lay.header)} }

func (t *Table) headerSeparatorRows(*layout) []string { return nil }

func (t *Table) valueRows(_ *layout, items []string) []string { return []string{t.joinRow(items)} }

func (t *Table) valueRowSeparatorRows(*layout) []string { return nil }

func (t *Table) closingRows(*layout) []string { return nil }

func (t *Table) joinRow(items []string) string {
	return t.Indent + strings.Join(items, t.ColumnDelimiter)
}

func isBlankHeader(header []string) bool {
	for _, h := range header {
		if strings.TrimSpace(h) != "" {
			return false
		}
	}
	return true
}

func isBlankRows(rows [][]any) bool {
	for _, row := range rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

func columnCount(header []string, rows [][]any) int {
	if !isBlankHeader(header) {
		return len(header)
	}
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}
