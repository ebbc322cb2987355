package tblwriter

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyTableData        = errors.New("empty table data")
	ErrEmptyHeader           = errors.New("empty header")
	ErrEmptyTableName        = errors.New("empty table name")
	ErrConfiguration         = errors.New("invalid configuration")
	ErrUnsupportedFormat     = errors.New("unsupported format")
	ErrSplitWriteUnsupported = errors.New("split write unsupported")
)

// Format names an output format.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Latex    Format = "latex"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Text     Format = "text"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	TOML     Format = "toml"
)

var formats = []Format{CSV, TSV, Latex, Markdown, HTML, Text, JSON, JSONL, YAML, TOML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name such as a CLI flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Writer is the behavior shared by every table writer. Callers configure the
// table through [Writer.Base] (or the concrete writer's fields) and then call
// one of the write methods.
type Writer interface {
	// Format reports the output format.
	Format() Format
	// SupportSplitWrite reports whether WriteTableIter can emit a table
	// across several chunks.
	SupportSplitWrite() bool
	// Base returns the table state the writer renders.
	Base() *Table
	WriteTable() error
	WriteTableIter(chunks iter.Seq[[][]any]) error
	Dumps() (string, error)
	WriteNullLine() error
}

// NewWriter returns a writer for f with the format's default settings.
func NewWriter(f Format) (Writer, error) {
	switch f {
	case CSV:
		return NewCSVWriter(), nil
	case TSV:
		return NewTSVWriter(), nil
	case Latex:
		return NewLatexWriter(), nil
	case Markdown:
		return NewMarkdownWriter(), nil
	case HTML:
		return NewHTMLWriter(), nil
	case Text:
		return NewTextWriter(), nil
	case JSON:
		return NewJSONWriter(), nil
	case JSONL:
		return NewJSONLinesWriter(), nil
	case YAML:
		return NewYAMLWriter(), nil
	case TOML:
		return NewTOMLWriter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
