package tblwriter

// CSVWriter writes comma-separated values. Strings and times are quoted with
// embedded quotes doubled, line breaks inside cells become spaces, and a
// blank header is left out rather than written as an empty line.
type CSVWriter struct {
	Table
}

// NewCSVWriter returns a CSV writer.
func NewCSVWriter() *CSVWriter {
	w := &CSVWriter{Table: Table{
		ColumnDelimiter: ",",
		RemoveLineBreak: true,
		QuoteFlags: map[Kind]bool{
			KindString:     true,
			KindDateTime:   true,
			KindNullString: false,
		},
	}}
	w.d = w
	return w
}

func (*CSVWriter) format() Format { return CSV }

func (*CSVWriter) supportSplitWrite() bool { return true }
