package tblwriter

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler turns a style and already formatted cell text into the final markup
// of one output format. Stylers are total and pure: a style the format
// cannot express is silently dropped.
type Styler interface {
	Apply(s Style, text string) string
}

// NullStyler returns text unchanged. Used by formats without inline styling.
type NullStyler struct{}

func (NullStyler) Apply(_ Style, text string) string { return text }

// TextStyler renders bold cells with ANSI escape codes when enabled.
type TextStyler struct {
	r *lipgloss.Renderer
}

// NewTextStyler returns a TextStyler. With ansi false it behaves like
// NullStyler.
func NewTextStyler(ansi bool) TextStyler {
	if !ansi {
		return TextStyler{}
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return TextStyler{r: r}
}

func (t TextStyler) Apply(s Style, text string) string {
	if t.r == nil || text == "" || s.FontWeight != FontWeightBold {
		return text
	}
	return t.r.NewStyle().Bold(true).Render(text)
}

// MarkdownStyler wraps bold cells in double asterisks.
type MarkdownStyler struct{}

func (MarkdownStyler) Apply(s Style, text string) string {
	if text == "" || s.FontWeight != FontWeightBold {
		return text
	}
	return "**" + text + "**"
}

var latexFontSizes = map[FontSize]string{
	FontSizeTiny:   `\tiny`,
	FontSizeSmall:  `\small`,
	FontSizeMedium: `\normalsize`,
	FontSizeLarge:  `\large`,
}

// LatexStyler prefixes cells with font size and weight commands.
type LatexStyler struct{}

func (LatexStyler) Apply(s Style, text string) string {
	if text == "" {
		return text
	}
	var parts []string
	if cmd, ok := latexFontSizes[s.FontSize]; ok {
		parts = append(parts, cmd)
	}
	if s.FontWeight == FontWeightBold {
		parts = append(parts, `\bf`)
	}
	if len(parts) == 0 {
		return text
	}
	return strings.Join(append(parts, text), " ")
}

var htmlFontSizes = map[FontSize]string{
	FontSizeTiny:   "x-small",
	FontSizeSmall:  "small",
	FontSizeMedium: "medium",
	FontSizeLarge:  "large",
}

// HTMLStyler wraps cells in a span carrying inline CSS. The text must
// already be escaped.
type HTMLStyler struct{}

func (HTMLStyler) Apply(s Style, text string) string {
	var css []string
	if size, ok := htmlFontSizes[s.FontSize]; ok {
		css = append(css, "font-size:"+size)
	}
	if s.FontWeight == FontWeightBold {
		css = append(css, "font-weight:bold")
	}
	if len(css) == 0 || text == "" {
		return text
	}
	return `<span style="` + strings.Join(css, "; ") + `">` + text + "</span>"
}
