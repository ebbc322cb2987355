package tblwriter

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Align controls text alignment within a column.
type Align int

const (
	AlignAuto Align = iota // right for numbers, left otherwise
	AlignLeft
	AlignRight
	AlignCenter
)

// FontSize selects a relative font size. Formats without font sizes ignore it.
type FontSize int

const (
	FontSizeNone FontSize = iota
	FontSizeTiny
	FontSizeSmall
	FontSizeMedium
	FontSizeLarge
)

// FontWeight selects the font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// ThousandSeparator selects how digits of numeric cells are grouped.
type ThousandSeparator int

const (
	ThousandSeparatorNone ThousandSeparator = iota
	ThousandSeparatorComma
	ThousandSeparatorSpace
	ThousandSeparatorUnderscore
)

// Style describes how the cells of a column are rendered. Style is a value
// type: two styles with equal fields are interchangeable, and the zero Style
// means "use the writer's default".
type Style struct {
	Align             Align             `yaml:"align,omitempty" toml:"align,omitempty" json:"align,omitempty"`
	FontSize          FontSize          `yaml:"font_size,omitempty" toml:"font_size,omitempty" json:"font_size,omitempty"`
	FontWeight        FontWeight        `yaml:"font_weight,omitempty" toml:"font_weight,omitempty" json:"font_weight,omitempty"`
	ThousandSeparator ThousandSeparator `yaml:"thousand_separator,omitempty" toml:"thousand_separator,omitempty" json:"thousand_separator,omitempty"`
}

// IsZero reports whether s is the unset style.
func (s Style) IsZero() bool { return s == Style{} }

// StyleConfig holds the textual options a Style is built from. Empty fields
// keep their defaults.
type StyleConfig struct {
	Align             string `yaml:"align"`
	FontSize          string `yaml:"font_size"`
	FontWeight        string `yaml:"font_weight"`
	ThousandSeparator string `yaml:"thousand_separator"`
}

// NewStyle builds a Style from cfg. Unrecognized values fail with
// ErrConfiguration.
func NewStyle(cfg StyleConfig) (Style, error) {
	var (
		s   Style
		err error
	)
	if s.Align, err = ParseAlign(cfg.Align); err != nil {
		return Style{}, err
	}
	if s.FontSize, err = ParseFontSize(cfg.FontSize); err != nil {
		return Style{}, err
	}
	if s.FontWeight, err = ParseFontWeight(cfg.FontWeight); err != nil {
		return Style{}, err
	}
	if s.ThousandSeparator, err = ParseThousandSeparator(cfg.ThousandSeparator); err != nil {
		return Style{}, err
	}
	return s, nil
}

// LoadStyles decodes a YAML sequence of style configurations, one per
// column. A null entry leaves the column unset. Unknown keys and values fail
// with ErrConfiguration.
func LoadStyles(r io.Reader) ([]Style, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfgs []*StyleConfig
	if err := dec.Decode(&cfgs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrConfiguration, err)
	}
	styles := make([]Style, len(cfgs))
	for i, cfg := range cfgs {
		if cfg == nil {
			continue
		}
		s, err := NewStyle(*cfg)
		if err != nil {
			return nil, fmt.Errorf("style %d: %w", i, err)
		}
		styles[i] = s
	}
	return styles, nil
}

var alignNames = map[Align]string{
	AlignAuto:   "auto",
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignCenter: "center",
}

var fontSizeNames = map[FontSize]string{
	FontSizeNone:   "none",
	FontSizeTiny:   "tiny",
	FontSizeSmall:  "small",
	FontSizeMedium: "medium",
	FontSizeLarge:  "large",
}

var fontWeightNames = map[FontWeight]string{
	FontWeightNormal: "normal",
	FontWeightBold:   "bold",
}

var separatorNames = map[ThousandSeparator]string{
	ThousandSeparatorNone:       "none",
	ThousandSeparatorComma:      "comma",
	ThousandSeparatorSpace:      "space",
	ThousandSeparatorUnderscore: "underscore",
}

// separator characters accepted in place of the names.
var separatorChars = map[string]ThousandSeparator{
	",": ThousandSeparatorComma,
	" ": ThousandSeparatorSpace,
	"_": ThousandSeparatorUnderscore,
}

func parseEnum[T comparable](kind, s string, names map[T]string) (T, error) {
	var zero T
	if s == "" {
		return zero, nil
	}
	want := strings.ToLower(strings.TrimSpace(s))
	for v, name := range names {
		if name == want {
			return v, nil
		}
	}
	return zero, fmt.Errorf("%w: unknown %s %q", ErrConfiguration, kind, s)
}

// ParseAlign parses auto, left, right or center. Empty means auto.
func ParseAlign(s string) (Align, error) { return parseEnum("align", s, alignNames) }

// ParseFontSize parses none, tiny, small, medium or large. Empty means none.
func ParseFontSize(s string) (FontSize, error) { return parseEnum("font size", s, fontSizeNames) }

// ParseFontWeight parses normal or bold. Empty means normal.
func ParseFontWeight(s string) (FontWeight, error) {
	return parseEnum("font weight", s, fontWeightNames)
}

// ParseThousandSeparator parses none, comma, space or underscore, or the
// separator character itself (",", " ", "_"). Empty means none.
func ParseThousandSeparator(s string) (ThousandSeparator, error) {
	if v, ok := separatorChars[s]; ok {
		return v, nil
	}
	return parseEnum("thousand separator", s, separatorNames)
}

func (a Align) String() string { return alignNames[a] }

func (f FontSize) String() string { return fontSizeNames[f] }

func (f FontWeight) String() string { return fontWeightNames[f] }

func (t ThousandSeparator) String() string { return separatorNames[t] }

func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Align) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAlign(string(b))
	return err
}

func (f FontSize) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FontSize) UnmarshalText(b []byte) (err error) {
	*f, err = ParseFontSize(string(b))
	return err
}

func (f FontWeight) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FontWeight) UnmarshalText(b []byte) (err error) {
	*f, err = ParseFontWeight(string(b))
	return err
}

func (t ThousandSeparator) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ThousandSeparator) UnmarshalText(b []byte) (err error) {
	*t, err = ParseThousandSeparator(string(b))
	return err
}

// chars returns the grouping string used by the value formatter.
func (t ThousandSeparator) chars() string {
	switch t {
	case ThousandSeparatorComma:
		return ","
	case ThousandSeparatorSpace:
		return " "
	case ThousandSeparatorUnderscore:
		return "_"
	default:
		return ""
	}
}
