package tblwriter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls text table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

func (b BorderStyle) String() string { return borderNames[b] }

// ParseBorderStyle parses rounded, none, ascii, heavy or double.
func ParseBorderStyle(s string) (BorderStyle, error) {
	if s == "" {
		return BorderASCII, nil
	}
	return parseEnum("border style", s, borderNames)
}

func (b BorderStyle) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BorderStyle) UnmarshalText(text []byte) (err error) {
	*b, err = ParseBorderStyle(string(text))
	return err
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// TextWriter writes a fixed-width table for terminals. The table name is
// drawn as a centered title above the columns.
type TextWriter struct {
	Table
	// Border selects the border characters. BorderNone separates columns
	// with two spaces and draws dashed rules.
	Border BorderStyle
	// RowSeparators draws a rule between body rows.
	RowSeparators bool
	// EnableANSI renders bold cells with ANSI escape codes.
	EnableANSI bool
}

// NewTextWriter returns a text writer with ASCII borders.
func NewTextWriter() *TextWriter {
	w := &TextWriter{
		Table: Table{
			Padding:         true,
			HeaderSeparator: true,
			RemoveLineBreak: true,
		},
		Border: BorderASCII,
	}
	w.d = w
	return w
}

func (*TextWriter) format() Format { return Text }

func (*TextWriter) supportSplitWrite() bool { return false }

func (w *TextWriter) styler() Styler { return NewTextStyler(w.EnableANSI) }

func (w *TextWriter) chars() (borderChars, bool) {
	bc, ok := borderSets[w.Border]
	return bc, ok
}

func (w *TextWriter) openingRows(lay *layout) []string {
	widths := columnWidths(lay)
	bc, bordered := w.chars()
	if !bordered {
		if w.Name == "" {
			return nil
		}
		return []string{w.Name}
	}
	if w.Name == "" {
		return []string{hline(widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)}
	}
	inner := tableInnerWidth(widths) - 2
	return []string{
		hline(widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight),
		fmt.Sprintf("%s %s %s", bc.vertical, alignText(fitTitle(w.Name, inner), inner, AlignCenter), bc.vertical),
		hline(widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee),
	}
}

func (w *TextWriter) headerRows(lay *layout) []string {
	return []string{w.row(lay.header)}
}

func (w *TextWriter) headerSeparatorRows(lay *layout) []string {
	return []string{w.rule(lay)}
}

func (w *TextWriter) valueRows(_ *layout, items []string) []string {
	return []string{w.row(items)}
}

func (w *TextWriter) valueRowSeparatorRows(lay *layout) []string {
	if !w.RowSeparators {
		return nil
	}
	return []string{w.rule(lay)}
}

func (w *TextWriter) closingRows(lay *layout) []string {
	bc, bordered := w.chars()
	if !bordered {
		return nil
	}
	return []string{hline(columnWidths(lay), bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)}
}

func (w *TextWriter) row(items []string) string {
	bc, bordered := w.chars()
	if !bordered {
		return strings.TrimRight(strings.Join(items, "  "), " ")
	}
	return bc.vertical + " " + strings.Join(items, " "+bc.vertical+" ") + " " + bc.vertical
}

// rule is the line between header and body, and between body rows.
func (w *TextWriter) rule(lay *layout) string {
	widths := columnWidths(lay)
	bc, bordered := w.chars()
	if !bordered {
		sep := make([]string, len(widths))
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		return strings.Join(sep, "  ")
	}
	return hline(widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
}

// fitTitle truncates a title wider than the table.
func fitTitle(title string, width int) string {
	if textWidth(title) <= width {
		return title
	}
	tail := "..."
	if width < len(tail) {
		tail = ""
	}
	return runewidth.Truncate(title, width, tail)
}

func columnWidths(lay *layout) []int {
	widths := make([]int, len(lay.cols))
	for i, col := range lay.cols {
		widths[i] = col.width
	}
	return widths
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func hline(widths []int, left, fill, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}
