package tblwriter

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter writes the table as a sequence of mappings keyed by header, with
// keys in column order. A named table is wrapped in a mapping under its name.
type YAMLWriter struct {
	Table
}

// NewYAMLWriter returns a YAML writer.
func NewYAMLWriter() *YAMLWriter {
	w := &YAMLWriter{Table: Table{Indent: "  "}}
	w.d = w
	return w
}

func (*YAMLWriter) format() Format { return YAML }

func (*YAMLWriter) supportSplitWrite() bool { return false }

func (*YAMLWriter) validate(header []string) error { return requireHeader(YAML, header) }

func (w *YAMLWriter) encode(out io.Writer, rec *records) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rec.fields(true) {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range row {
			val := &yaml.Node{}
			if err := val.Encode(f.value); err != nil {
				return err
			}
			m.Content = append(m.Content, yamlKey(f.key), val)
		}
		seq.Content = append(seq.Content, m)
	}
	doc := seq
	if rec.name != "" {
		doc = &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{yamlKey(rec.name), seq}}
	}
	enc := yaml.NewEncoder(out)
	if n := len(w.Indent); n > 0 {
		enc.SetIndent(n)
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func yamlKey(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
