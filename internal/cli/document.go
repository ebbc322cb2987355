package cli

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tblwriter"
)

// Document is a table read from a YAML or TOML file.
type Document struct {
	Name   string            `yaml:"name" toml:"name"`
	Header []string          `yaml:"header" toml:"header"`
	Rows   [][]any           `yaml:"rows" toml:"rows"`
	Styles []tblwriter.Style `yaml:"styles" toml:"styles"`
}

// documentKind picks the decoder from the file extension. Anything that is
// not TOML is read as YAML, which includes stdin.
func documentKind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

// decodeDocument decodes data as the given kind. Unknown keys are rejected.
func decodeDocument(kind string, data []byte) (*Document, error) {
	var doc Document
	switch kind {
	case "toml":
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}
	return &doc, nil
}

// apply copies the document into the writer's table.
func (d *Document) apply(t *tblwriter.Table) {
	t.Name = d.Name
	t.Header = d.Header
	t.Rows = d.Rows
	t.Styles = d.Styles
}
