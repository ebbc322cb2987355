package tblwriter

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONWriter writes the table as an array of objects keyed by header, with
// keys in column order. A named table is wrapped in an object under its name.
// Indent is the indentation unit; empty writes compact JSON. Infinity and NaN,
// which JSON cannot represent, are written as their display strings.
type JSONWriter struct {
	Table
}

// NewJSONWriter returns a JSON writer.
func NewJSONWriter() *JSONWriter {
	w := &JSONWriter{Table: Table{Indent: "  "}}
	w.d = w
	return w
}

func (*JSONWriter) format() Format { return JSON }

func (*JSONWriter) supportSplitWrite() bool { return false }

func (*JSONWriter) validate(header []string) error { return requireHeader(JSON, header) }

func (w *JSONWriter) encode(out io.Writer, rec *records) error {
	rows := rec.fields(false)
	recs := make([]jsonObject, len(rows))
	for i, row := range rows {
		recs[i] = jsonObject(row)
	}
	var v any = recs
	if rec.name != "" {
		v = jsonObject{{key: rec.name, value: recs}}
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if w.Indent != "" {
		enc.SetIndent("", w.Indent)
	}
	return enc.Encode(v)
}

// jsonObject marshals as an object whose keys keep their order.
type jsonObject []field

func (o jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, f.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, f.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
