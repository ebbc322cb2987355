package tblwriter

import (
	"fmt"
	"strings"
)

// MarkdownWriter writes a GitHub-flavored Markdown table. The table name, if
// set, becomes a level one heading. Markdown tables need a header.
type MarkdownWriter struct {
	Table
}

// NewMarkdownWriter returns a Markdown writer.
func NewMarkdownWriter() *MarkdownWriter {
	w := &MarkdownWriter{Table: Table{
		ColumnDelimiter:    " | ",
		Padding:            true,
		HeaderSeparator:    true,
		NullLineAfterTable: true,
	}}
	w.d = w
	return w
}

func (*MarkdownWriter) format() Format { return Markdown }

func (*MarkdownWriter) supportSplitWrite() bool { return false }

func (*MarkdownWriter) styler() Styler { return MarkdownStyler{} }

// Alignment markers need at least three dashes.
func (*MarkdownWriter) minWidth() int { return 3 }

var markdownEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
)

func (*MarkdownWriter) escape(s string) string { return markdownEscaper.Replace(s) }

func (*MarkdownWriter) validate(header []string) error {
	if isBlankHeader(header) {
		return fmt.Errorf("%w: format %q", ErrEmptyHeader, Markdown)
	}
	return nil
}

func (w *MarkdownWriter) openingRows(*layout) []string {
	if w.Name == "" {
		return nil
	}
	return []string{"# " + w.Name, ""}
}

func (w *MarkdownWriter) headerRows(lay *layout) []string {
	return []string{w.row(lay.header)}
}

func (w *MarkdownWriter) headerSeparatorRows(lay *layout) []string {
	sep := make([]string, len(lay.cols))
	for i, col := range lay.cols {
		width := max(col.width, 3)
		switch col.align {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	return []string{w.row(sep)}
}

func (w *MarkdownWriter) valueRows(_ *layout, items []string) []string {
	return []string{w.row(items)}
}

func (w *MarkdownWriter) row(items []string) string {
	return "| " + strings.Join(items, w.ColumnDelimiter) + " |"
}
