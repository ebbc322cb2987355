// Package dataprop infers the semantic type of table cell values and formats
// them for display.
//
// It is the boundary between raw Go values handed to a table writer and the
// text the writer lays out. [Infer] classifies a value, [ColumnKind] and
// [ColumnDecimalPlaces] summarize a column, and [Format] turns a [Value] into
// its display string.
package dataprop

// Kind is the inferred semantic type of a cell.
type Kind int

const (
	None Kind = iota
	NullString
	String
	Integer
	Float
	Bool
	DateTime
	Infinity
	NaN
)

var kindNames = map[Kind]string{
	None:       "none",
	NullString: "null_string",
	String:     "string",
	Integer:    "integer",
	Float:      "float",
	Bool:       "bool",
	DateTime:   "datetime",
	Infinity:   "infinity",
	NaN:        "nan",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Numeric reports whether values of the kind are right-aligned numbers.
func (k Kind) Numeric() bool {
	return k == Integer || k == Float
}

// ColumnKind resolves the kind of a column from the kinds of its cells.
// Empty cells (None and NullString) are ignored. A column whose cells all
// share a kind takes that kind; a mix of integers, floats and special floats
// is Float as long as at least one real float is present; anything else
// degrades to String.
func ColumnKind(kinds []Kind) Kind {
	seen := make(map[Kind]bool)
	for _, k := range kinds {
		if k != None && k != NullString {
			seen[k] = true
		}
	}
	switch len(seen) {
	case 0:
		return None
	case 1:
		for k := range seen {
			return k
		}
	}
	if !seen[Float] {
		return String
	}
	for k := range seen {
		switch k {
		case Integer, Float, Infinity, NaN:
		default:
			return String
		}
	}
	return Float
}
