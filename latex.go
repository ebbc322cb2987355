package tblwriter

import (
	"strings"
	"unicode"
)

// LatexWriter writes a LaTeX array environment for math mode. Headers are
// always typeset verbatim; string and time cells are typeset verbatim when
// they contain whitespace or characters LaTeX treats specially. The table
// name is ignored.
type LatexWriter struct {
	Table
}

// NewLatexWriter returns a LaTeX writer.
func NewLatexWriter() *LatexWriter {
	w := &LatexWriter{Table: Table{
		ColumnDelimiter:    " & ",
		Padding:            true,
		HeaderSeparator:    true,
		Indent:             "    ",
		NullLineAfterTable: true,
		RemoveLineBreak:    true,
		InfValue:           `\infty`,
	}}
	w.d = w
	return w
}

func (*LatexWriter) format() Format { return Latex }

func (*LatexWriter) supportSplitWrite() bool { return false }

func (*LatexWriter) styler() Styler { return LatexStyler{} }

var latexAligns = map[Align]string{
	AlignLeft:   "l",
	AlignRight:  "r",
	AlignCenter: "c",
}

const latexRowEnd = ` \\ \hline`

func (*LatexWriter) openingRows(lay *layout) []string {
	aligns := make([]string, len(lay.cols))
	for i, col := range lay.cols {
		aligns[i] = latexAligns[col.align]
	}
	return []string{`\begin{array}{` + strings.Join(aligns, " | ") + `} \hline`}
}

func (w *LatexWriter) headerRows(lay *layout) []string {
	return []string{w.joinRow(lay.header) + latexRowEnd}
}

func (w *LatexWriter) headerSeparatorRows(*layout) []string {
	return []string{w.Indent + `\hline`}
}

func (w *LatexWriter) valueRows(_ *layout, items []string) []string {
	return []string{w.joinRow(items) + latexRowEnd}
}

func (*LatexWriter) closingRows(*layout) []string {
	return []string{`\end{array}`}
}

func (*LatexWriter) headerItem(_ *column, text string) string {
	return verbatim(text)
}

// valueItem typesets verbatim cells as \verb inside the style commands, so
// the commands stay active. The column width is measured without the \verb
// delimiters.
func (*LatexWriter) valueItem(col *column, c *cell, text string) string {
	switch c.value.Kind {
	case KindString, KindDateTime:
		if needsVerbatim(c.formatted) {
			return alignText(LatexStyler{}.Apply(col.style, verbatim(c.plain)), col.width, c.align)
		}
	}
	return text
}

// latexSpecials are the characters that change meaning inside a LaTeX array.
const latexSpecials = `#$%&_{}~^\`

func needsVerbatim(s string) bool {
	return strings.ContainsAny(s, latexSpecials) || strings.ContainsFunc(s, unicode.IsSpace)
}

// verbatim wraps s in \verb using the first delimiter s does not contain.
func verbatim(s string) string {
	for _, delim := range []string{"|", "+", "!", "@", "="} {
		if !strings.Contains(s, delim) {
			return `\verb` + delim + s + delim
		}
	}
	return `\verb"` + s + `"`
}
