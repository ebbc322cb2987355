package tblwriter

import (
	"encoding/json"
	"io"
)

// JSONLinesWriter writes one compact JSON object per row, keyed by header.
// The table name is not written. Because every line stands alone, the table
// can be written in chunks with [Table.WriteTableIter].
type JSONLinesWriter struct {
	Table
}

// NewJSONLinesWriter returns a JSON Lines writer.
func NewJSONLinesWriter() *JSONLinesWriter {
	w := &JSONLinesWriter{}
	w.d = w
	return w
}

func (*JSONLinesWriter) format() Format { return JSONL }

func (*JSONLinesWriter) supportSplitWrite() bool { return true }

func (*JSONLinesWriter) validate(header []string) error { return requireHeader(JSONL, header) }

func (*JSONLinesWriter) encode(out io.Writer, rec *records) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for _, row := range rec.fields(false) {
		if err := enc.Encode(jsonObject(row)); err != nil {
			return err
		}
	}
	return nil
}
