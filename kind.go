package tblwriter

import "github.com/bjaus/tblwriter/internal/dataprop"

// Kind is the inferred semantic type of a cell. Writers key quoting rules
// and default alignment on it.
type Kind = dataprop.Kind

const (
	KindNone       = dataprop.None
	KindNullString = dataprop.NullString
	KindString     = dataprop.String
	KindInteger    = dataprop.Integer
	KindFloat      = dataprop.Float
	KindBool       = dataprop.Bool
	KindDateTime   = dataprop.DateTime
	KindInfinity   = dataprop.Infinity
	KindNaN        = dataprop.NaN
)
