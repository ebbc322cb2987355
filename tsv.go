package tblwriter

// TSVWriter writes tab-separated values with the same quoting rules as
// [CSVWriter].
type TSVWriter struct {
	CSVWriter
}

// NewTSVWriter returns a TSV writer.
func NewTSVWriter() *TSVWriter {
	w := &TSVWriter{CSVWriter: *NewCSVWriter()}
	w.ColumnDelimiter = "\t"
	w.d = w
	return w
}

func (*TSVWriter) format() Format { return TSV }
