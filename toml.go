package tblwriter

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLWriter writes the table as an array of tables named after the table.
// Empty cells are left out of their record since TOML has no null.
type TOMLWriter struct {
	Table
}

// NewTOMLWriter returns a TOML writer.
func NewTOMLWriter() *TOMLWriter {
	w := &TOMLWriter{}
	w.d = w
	return w
}

func (*TOMLWriter) format() Format { return TOML }

func (*TOMLWriter) supportSplitWrite() bool { return false }

func (w *TOMLWriter) validate(header []string) error {
	if w.Name == "" {
		return fmt.Errorf("%w: format %q", ErrEmptyTableName, TOML)
	}
	return requireHeader(TOML, header)
}

func (*TOMLWriter) encode(out io.Writer, rec *records) error {
	rows := rec.fields(true)
	recs := make([]map[string]any, len(rows))
	for i, row := range rows {
		m := make(map[string]any, len(row))
		for _, f := range row {
			if f.value != nil {
				m[f.key] = f.value
			}
		}
		recs[i] = m
	}
	return toml.NewEncoder(out).Encode(map[string]any{rec.name: recs})
}
