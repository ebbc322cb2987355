package tblwriter_test

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tblwriter"
)

// --- Helpers ---

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

// newWriter returns a writer for f that renders header and rows into buf.
func newWriter(t *testing.T, f tblwriter.Format, header []string, rows [][]any) (tblwriter.Writer, *bytes.Buffer) {
	t.Helper()
	w, err := tblwriter.NewWriter(f)
	require.NoError(t, err)
	var buf bytes.Buffer
	tb := w.Base()
	tb.Name = "sample"
	tb.Header = header
	tb.Rows = rows
	tb.Output = &buf
	return w, &buf
}

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tblwriter.Format
		wantErr require.ErrorAssertionFunc
	}{
		"csv":      {input: "csv", want: tblwriter.CSV, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: tblwriter.TSV, wantErr: require.NoError},
		"latex":    {input: "latex", want: tblwriter.Latex, wantErr: require.NoError},
		"markdown": {input: "markdown", want: tblwriter.Markdown, wantErr: require.NoError},
		"html":     {input: "html", want: tblwriter.HTML, wantErr: require.NoError},
		"text":     {input: "text", want: tblwriter.Text, wantErr: require.NoError},
		"json":     {input: "json", want: tblwriter.JSON, wantErr: require.NoError},
		"jsonl":    {input: "jsonl", want: tblwriter.JSONL, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: tblwriter.YAML, wantErr: require.NoError},
		"toml":     {input: "toml", want: tblwriter.TOML, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tblwriter.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatSentinel(t *testing.T) {
	t.Parallel()
	_, err := tblwriter.ParseFormat("xml")
	require.ErrorIs(t, err, tblwriter.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := tblwriter.Formats()
	assert.Equal(t, []tblwriter.Format{
		tblwriter.CSV, tblwriter.TSV, tblwriter.Latex, tblwriter.Markdown,
		tblwriter.HTML, tblwriter.Text, tblwriter.JSON, tblwriter.JSONL, tblwriter.YAML, tblwriter.TOML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, tblwriter.CSV, tblwriter.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "latex", tblwriter.Latex.String())
	assert.Equal(t, "csv", tblwriter.CSV.String())
}

func TestNewWriter(t *testing.T) {
	t.Parallel()
	for _, f := range tblwriter.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			w, err := tblwriter.NewWriter(f)
			require.NoError(t, err)
			assert.Equal(t, f, w.Format())
			assert.Equal(t, f, w.Base().Format())
			split := f == tblwriter.CSV || f == tblwriter.TSV || f == tblwriter.JSONL
			assert.Equal(t, split, w.SupportSplitWrite())
		})
	}
}

func TestNewWriterUnsupported(t *testing.T) {
	t.Parallel()
	w, err := tblwriter.NewWriter("xml")
	require.ErrorIs(t, err, tblwriter.ErrUnsupportedFormat)
	assert.Nil(t, w)
}

func TestZeroTableIsUnusable(t *testing.T) {
	t.Parallel()
	var tb tblwriter.Table
	tb.Header = []string{"a"}
	tb.Rows = [][]any{{1}}
	err := tb.WriteTable()
	require.ErrorIs(t, err, tblwriter.ErrConfiguration)
	_, err = tb.Dumps()
	require.ErrorIs(t, err, tblwriter.ErrConfiguration)
	assert.Equal(t, tblwriter.Format(""), tb.Format())
	assert.False(t, tb.SupportSplitWrite())
}

// --- Empty data ---

func TestEmptyTableData(t *testing.T) {
	t.Parallel()
	headers := map[string][]string{
		"nil header":   nil,
		"empty header": {},
		"blank header": {""},
	}
	rows := map[string][][]any{
		"nil rows":   nil,
		"empty rows": {},
		"empty row":  {{}},
	}
	for _, f := range tblwriter.Formats() {
		for hname, header := range headers {
			for rname, value := range rows {
				t.Run(f.String()+"/"+hname+"/"+rname, func(t *testing.T) {
					t.Parallel()
					w, buf := newWriter(t, f, header, value)
					require.ErrorIs(t, w.WriteTable(), tblwriter.ErrEmptyTableData)
					assert.Empty(t, buf.String())
					_, err := w.Dumps()
					require.ErrorIs(t, err, tblwriter.ErrEmptyTableData)
				})
			}
		}
	}
}

// --- Dumps and WriteTable ---

func TestDumpsFollowsTableChanges(t *testing.T) {
	t.Parallel()
	w := tblwriter.NewMarkdownWriter()
	w.Header = []string{"a"}
	w.Rows = [][]any{{1}}
	got, err := w.Dumps()
	require.NoError(t, err)
	assert.Equal(t, "|  a  |\n| --: |\n|   1 |\n\n", got)

	w.Rows = [][]any{{"wide text"}}
	got, err = w.Dumps()
	require.NoError(t, err)
	assert.Equal(t, "|     a     |\n| --------- |\n| wide text |\n\n", got)

	w.Header = []string{"heading"}
	w.Styles = []tblwriter.Style{{Align: tblwriter.AlignCenter}}
	got, err = w.Dumps()
	require.NoError(t, err)
	assert.Equal(t, "|  heading  |\n| :-------: |\n| wide text |\n\n", got)
}

func TestDumpsMatchesWriteTable(t *testing.T) {
	t.Parallel()
	header := []string{"id", "name", "score", "joined"}
	rows := [][]any{
		{1, "alice", 9.5, time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)},
		{2, "bob", 7.25, nil},
	}
	for _, f := range tblwriter.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			w, buf := newWriter(t, f, header, rows)
			require.NoError(t, w.WriteTable())
			got, err := w.Dumps()
			require.NoError(t, err)
			assert.Equal(t, buf.String(), got)
			assert.NotEmpty(t, got)

			again, err := w.Dumps()
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestWriteTableDefaultsToStdout(t *testing.T) {
	t.Parallel()
	w := tblwriter.NewCSVWriter()
	assert.Nil(t, w.Output)
}

func TestWriteNullLine(t *testing.T) {
	t.Parallel()
	for _, f := range tblwriter.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			w, buf := newWriter(t, f, nil, nil)
			require.NoError(t, w.WriteNullLine())
			assert.Equal(t, "\n", buf.String())
		})
	}
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	for _, f := range tblwriter.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			w, _ := newWriter(t, f, []string{"a", "b"}, [][]any{{1, "x"}})
			w.Base().Output = &errWriter{}
			require.ErrorIs(t, w.WriteTable(), errWriteFailed)
			require.ErrorIs(t, w.WriteNullLine(), errWriteFailed)
		})
	}
}

func TestWriteTableLogsDebug(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	w := tblwriter.NewCSVWriter()
	w.Logger = log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	w.Header = []string{"a"}
	w.Rows = [][]any{{1}}
	w.Output = &bytes.Buffer{}
	require.NoError(t, w.WriteTable())
	assert.Contains(t, logs.String(), "rendering table")
	assert.Contains(t, logs.String(), "format=csv")
}

// --- CSV ---

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		header []string
		rows   [][]any
		want   string
	}{
		"quotes strings and header": {
			header: []string{"a", "b", "c"},
			rows: [][]any{
				{1, "x,y", ""},
				{2.5, `say "hi"`, nil},
			},
			want: `"a","b","c"` + "\n" +
				`1.0,"x,y",` + "\n" +
				`2.5,"say ""hi""",` + "\n",
		},
		"no header": {
			rows: [][]any{{1, "a"}, {2, "b"}},
			want: "1,\"a\"\n2,\"b\"\n",
		},
		"blank header is left out": {
			header: []string{"", " "},
			rows:   [][]any{{1, "a"}},
			want:   "1,\"a\"\n",
		},
		"header only": {
			header: []string{"a", "b"},
			want:   "\"a\",\"b\"\n",
		},
		"line breaks become spaces": {
			header: []string{"text"},
			rows:   [][]any{{"line1\nline2\r\nline3"}},
			want:   "\"text\"\n\"line1 line2 line3\"\n",
		},
		"bools and times are typed": {
			header: []string{"ok", "at"},
			rows:   [][]any{{true, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)}},
			want:   "\"ok\",\"at\"\nTrue,\"2017-01-01T00:00:00\"\n",
		},
		"irregular rows": {
			header: []string{"a", "b"},
			rows:   [][]any{{1, "x", "extra"}, {2}},
			want:   "\"a\",\"b\"\n1,\"x\"\n2,\n",
		},
		"numeric strings are numbers": {
			header: []string{"n"},
			rows:   [][]any{{"42"}, {"-7"}},
			want:   "\"n\"\n42\n-7\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w, buf := newWriter(t, tblwriter.CSV, tt.header, tt.rows)
			require.NoError(t, w.WriteTable())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCSVQuoteFlags(t *testing.T) {
	t.Parallel()
	w := tblwriter.NewCSVWriter()
	var buf bytes.Buffer
	w.Output = &buf
	w.Header = []string{"a", "b"}
	w.Rows = [][]any{{"x", 1}}
	w.QuoteFlags = map[tblwriter.Kind]bool{tblwriter.KindInteger: true}
	require.NoError(t, w.WriteTable())
	assert.Equal(t, "a,b\nx,\"1\"\n", buf.String())
}

func TestWriteCSVThousandSeparator(t *testing.T) {
	t.Parallel()
	w := tblwriter.NewCSVWriter()
	var buf bytes.Buffer
	w.Output = &buf
	w.Header = []string{"n"}
	w.Rows = [][]any{{1234567}}
	w.Styles = []tblwriter.Style{{ThousandSeparator: tblwriter.ThousandSeparatorUnderscore}}
	require.NoError(t, w.WriteTable())
	assert.Equal(t, "\"n\"\n1_234_567\n", buf.String())
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	w, buf := newWriter(t, tblwriter.TSV, []string{"a", "b"}, [][]any{{1, "x y"}, {2, "z"}})
	require.NoError(t, w.WriteTable())
	assert.Equal(t, "\"a\"\t\"b\"\n1\t\"x y\"\n2\t\"z\"\n", buf.String())
}

// --- Split write ---

func TestWriteTableIter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format tblwriter.Format
		header []string
		chunks [][][]any
		want   string
	}{
		"header with first chunk only": {
			format: tblwriter.CSV,
			header: []string{"n", "s"},
			chunks: [][][]any{{{1, "a"}}, {}, {{2, "b"}, {3, "c"}}},
			want:   "\"n\",\"s\"\n1,\"a\"\n2,\"b\"\n3,\"c\"\n",
		},
		"no chunks writes the header": {
			format: tblwriter.CSV,
			header: []string{"n"},
			want:   "\"n\"\n",
		},
		"headerless": {
			format: tblwriter.TSV,
			chunks: [][][]any{{{1, "a"}}, {{2, "b"}}},
			want:   "1\t\"a\"\n2\t\"b\"\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w, buf := newWriter(t, tt.format, tt.header, nil)
			require.NoError(t, w.WriteTableIter(slices.Values(tt.chunks)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteTableIterEmpty(t *testing.T) {
	t.Parallel()
	w, buf := newWriter(t, tblwriter.CSV, nil, nil)
	err := w.WriteTableIter(slices.Values([][][]any{{}, {{}}}))
	require.ErrorIs(t, err, tblwriter.ErrEmptyTableData)
	assert.Empty(t, buf.String())
}

func TestWriteTableIterUnsupported(t *testing.T) {
	t.Parallel()
	for _, f := range tblwriter.Formats() {
		if f == tblwriter.CSV || f == tblwriter.TSV || f == tblwriter.JSONL {
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			w, buf := newWriter(t, f, []string{"a"}, nil)
			err := w.WriteTableIter(slices.Values([][][]any{{{1}}}))
			require.ErrorIs(t, err, tblwriter.ErrSplitWriteUnsupported)
			assert.Empty(t, buf.String())
		})
	}
}

func TestWriteTableIterStopsOnError(t *testing.T) {
	t.Parallel()
	w := tblwriter.NewCSVWriter()
	out := &failAfterN{n: 1}
	w.Output = out
	w.Header = []string{"n"}
	var seen int
	chunks := func(yield func([][]any) bool) {
		for i := range 5 {
			seen++
			if !yield([][]any{{i}}) {
				return
			}
		}
	}
	err := w.WriteTableIter(chunks)
	require.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, 2, seen)
}

func TestWriteTableChan(t *testing.T) {
	t.Parallel()
	w := tblwriter.NewCSVWriter()
	var buf bytes.Buffer
	w.Output = &buf
	w.Header = []string{"n"}
	ch := make(chan [][]any, 3)
	ch <- [][]any{{1}}
	ch <- [][]any{{2}}
	ch <- [][]any{{3}}
	close(ch)
	require.NoError(t, w.WriteTableChan(ch))
	assert.Equal(t, "\"n\"\n1\n2\n3\n", buf.String())
}

func TestWriteTableIterIgnoresRows(t *testing.T) {
	t.Parallel()
	w := tblwriter.NewCSVWriter()
	var buf bytes.Buffer
	w.Output = &buf
	w.Header = []string{"n"}
	w.Rows = [][]any{{99}}
	require.NoError(t, w.WriteTableIter(slices.Values([][][]any{{{1}}})))
	assert.False(t, strings.Contains(buf.String(), "99"))
}
