package tblwriter

import (
	"html"
)

// HTMLWriter writes an HTML table. The table name becomes the caption and
// column alignment is carried by inline text-align styles.
type HTMLWriter struct {
	Table
}

// NewHTMLWriter returns an HTML writer.
func NewHTMLWriter() *HTMLWriter {
	w := &HTMLWriter{}
	w.d = w
	return w
}

func (*HTMLWriter) format() Format { return HTML }

func (*HTMLWriter) supportSplitWrite() bool { return false }

func (*HTMLWriter) styler() Styler { return HTMLStyler{} }

func (*HTMLWriter) escape(s string) string { return html.EscapeString(s) }

func (*HTMLWriter) headerItem(col *column, text string) string {
	return "<th" + alignStyle(col.align) + ">" + text + "</th>"
}

func (*HTMLWriter) valueItem(_ *column, c *cell, text string) string {
	return "<td" + alignStyle(c.align) + ">" + text + "</td>"
}

// openingRows also carries the head section so that the body always opens
// after it.
func (w *HTMLWriter) openingRows(lay *layout) []string {
	lines := []string{"<table>"}
	if w.Name != "" {
		lines = append(lines, "  <caption>"+html.EscapeString(w.Name)+"</caption>")
	}
	if lay.header != nil {
		lines = append(lines, "  <thead>")
		lines = append(lines, htmlRow(lay.header)...)
		lines = append(lines, "  </thead>")
	}
	return append(lines, "  <tbody>")
}

func (*HTMLWriter) headerRows(*layout) []string { return nil }

func (*HTMLWriter) valueRows(_ *layout, items []string) []string {
	return htmlRow(items)
}

func (*HTMLWriter) closingRows(*layout) []string {
	return []string{"  </tbody>", "</table>"}
}

func htmlRow(items []string) []string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, "    <tr>")
	for _, item := range items {
		lines = append(lines, "      "+item)
	}
	return append(lines, "    </tr>")
}

func alignStyle(a Align) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
