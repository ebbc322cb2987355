package tblwriter

import (
	"fmt"

	"github.com/bjaus/tblwriter/internal/dataprop"
)

// requireHeader is the validation shared by the record encoders, which key
// every value by its column name.
func requireHeader(f Format, header []string) error {
	if isBlankHeader(header) {
		return fmt.Errorf("%w: format %q", ErrEmptyHeader, f)
	}
	return nil
}

// field is one keyed value of a record.
type field struct {
	key   string
	value any
}

// fields returns the records as keyed values in column order. Special floats
// are kept as float64 when keepSpecial is set and written as their display
// strings otherwise.
func (r *records) fields(keepSpecial bool) [][]field {
	out := make([][]field, len(r.rows))
	for i, row := range r.rows {
		rec := make([]field, len(r.header))
		for j := range r.header {
			rec[j] = field{key: r.header[j], value: r.native(j, row[j], keepSpecial)}
		}
		out[i] = rec
	}
	return out
}

// native converts v to the Go value an encoder writes for column col.
func (r *records) native(col int, v dataprop.Value, keepSpecial bool) any {
	switch v.Kind {
	case KindNone, KindNullString:
		return nil
	case KindInteger:
		if r.kinds[col] == KindFloat {
			return v.Float64()
		}
		return v.Data
	case KindInfinity, KindNaN:
		if keepSpecial {
			return v.Float64()
		}
		return dataprop.Format(v, r.opts)
	default:
		return v.Data
	}
}
