package tblwriter

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/bjaus/tblwriter/internal/dataprop"
)

// column is the metadata derived for one column on each render call.
type column struct {
	index  int
	header string // header text after escaping and quoting
	kind   Kind
	style  Style
	align  Align // never AlignAuto
	width  int   // zero when padding is off
	places int   // shared decimal places, -1 outside Float columns
}

// cell is one rendered value.
type cell struct {
	value     dataprop.Value
	formatted string // bridge output before escaping, quoting and styling
	plain     string // escaped and quoted, not yet styled
	text      string // final text before padding
	align     Align
}

// layout is the fully measured table handed to a dialect's row hooks.
type layout struct {
	cols   []*column
	header []string   // padded header items; nil when the header is absent
	rows   [][]string // padded value items
}

// records is the typed, unpadded view used by encoder dialects.
type records struct {
	name   string
	header []string
	kinds  []Kind
	rows   [][]dataprop.Value
	opts   dataprop.Options
}

func naturalAlign(k Kind) Align {
	if k.Numeric() {
		return AlignRight
	}
	return AlignLeft
}

// normalize pads or truncates every row to n cells and infers their values.
func normalize(rows [][]any, n int) [][]dataprop.Value {
	out := make([][]dataprop.Value, len(rows))
	for i, row := range rows {
		vals := make([]dataprop.Value, n)
		for j := range n {
			if j < len(row) {
				vals[j] = dataprop.Infer(row[j])
			} else {
				vals[j] = dataprop.Infer(nil)
			}
		}
		out[i] = vals
	}
	return out
}

func (t *Table) styleAt(i int) Style {
	if i < len(t.Styles) && !t.Styles[i].IsZero() {
		return t.Styles[i]
	}
	return t.DefaultStyle
}

func (t *Table) formatOptions() dataprop.Options {
	return dataprop.Options{
		DecimalPlaces: -1,
		InfValue:      t.InfValue,
		NaNValue:      t.NaNValue,
		TimeLayout:    t.TimeLayout,
	}
}

// columns derives per-column kind, style, alignment and precision.
func (t *Table) columns(header []string, vals [][]dataprop.Value, n int) []*column {
	cols := make([]*column, n)
	for i := range n {
		kinds := make([]Kind, len(vals))
		colVals := make([]dataprop.Value, len(vals))
		for r, row := range vals {
			kinds[r] = row[i].Kind
			colVals[r] = row[i]
		}
		col := &column{index: i, kind: dataprop.ColumnKind(kinds), style: t.styleAt(i), places: -1}
		if i < len(header) {
			col.header = header[i]
		}
		col.align = col.style.Align
		if col.align == AlignAuto {
			col.align = naturalAlign(col.kind)
		}
		if col.kind == KindFloat {
			col.places = dataprop.ColumnDecimalPlaces(colVals)
		}
		cols[i] = col
	}
	return cols
}

func (t *Table) cleanText(d gridDialect, s string) string {
	if t.RemoveLineBreak {
		s = removeLineBreaks(s)
	}
	return d.escape(s)
}

func (t *Table) quote(k Kind, s string) string {
	if !t.QuoteFlags[k] {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// layout runs the rendering pipeline up to padded row items.
func (t *Table) layout(d gridDialect, header []string, rows [][]any) *layout {
	n := columnCount(header, rows)
	vals := normalize(rows, n)
	cols := t.columns(header, vals, n)
	styler := d.styler()
	opts := t.formatOptions()

	cells := make([][]*cell, len(vals))
	for r, row := range vals {
		cells[r] = make([]*cell, n)
		for i, v := range row {
			col := cols[i]
			o := opts
			o.DecimalPlaces = col.places
			if v.Kind.Numeric() {
				o.Separator = col.style.ThousandSeparator.chars()
			}
			c := &cell{value: v, formatted: dataprop.Format(v, o)}
			c.plain = t.quote(v.Kind, t.cleanText(d, c.formatted))
			c.text = styler.Apply(col.style, c.plain)
			c.align = col.style.Align
			if c.align == AlignAuto {
				c.align = naturalAlign(v.Kind)
			}
			cells[r][i] = c
		}
	}

	hasHeader := !isBlankHeader(header)
	for _, col := range cols {
		col.header = t.quote(KindString, t.cleanText(d, col.header))
		if !t.Padding {
			continue
		}
		w := d.minWidth()
		if hasHeader {
			w = max(w, textWidth(col.header))
		}
		for r := range cells {
			w = max(w, textWidth(cells[r][col.index].text))
		}
		col.width = w
	}

	lay := &layout{cols: cols, rows: make([][]string, len(cells))}
	if hasHeader {
		lay.header = make([]string, n)
		for i, col := range cols {
			lay.header[i] = d.headerItem(col, alignText(col.header, col.width, AlignCenter))
		}
	}
	for r, row := range cells {
		items := make([]string, n)
		for i, c := range row {
			items[i] = d.valueItem(cols[i], c, alignText(c.text, cols[i].width, c.align))
		}
		lay.rows[r] = items
	}
	return lay
}

// records builds the typed view used by encoder dialects.
func (t *Table) records(header []string, rows [][]any) *records {
	n := columnCount(header, rows)
	vals := normalize(rows, n)
	cols := t.columns(header, vals, n)
	rec := &records{name: t.Name, rows: vals, opts: t.formatOptions(), kinds: make([]Kind, n)}
	if !isBlankHeader(header) {
		rec.header = header
	}
	for i, col := range cols {
		rec.kinds[i] = col.kind
	}
	return rec
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func removeLineBreaks(s string) string { return lineBreaks.Replace(s) }

// textWidth is the display width of s with ANSI escape codes removed.
func textWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func alignText(s string, width int, align Align) string {
	pad := width - textWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
