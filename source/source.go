// Package source decodes input documents (JSON or YAML) into the generic
// values the contracts validate: map[string]any, []any, string, bool, nil and
// json.Number for JSON numbers.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the document decoder.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "auto"
}

// ErrDecode wraps every syntax or structure error returned by this package.
var ErrDecode = errors.New("source: decode")

// ParseFormat maps "json", "yaml"/"yml" and "auto"/"" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q", s)
}

// Detect picks a format from the file name, falling back to the first
// significant byte: '{' or '[' means JSON, anything else YAML.
func Detect(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".ndjson":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Documents decodes every record in data. A top-level array contributes one
// record per element; concatenated JSON values and multi-document YAML
// streams contribute one record per value.
func Documents(name string, data []byte, f Format) ([]any, error) {
	if f == FormatAuto {
		f = Detect(name, data)
	}
	var (
		docs []any
		err  error
	)
	switch f {
	case FormatJSON:
		docs, err = decodeJSON(bytes.NewReader(data))
	default:
		docs, err = decodeYAML(bytes.NewReader(data))
	}
	if err != nil {
		if name != "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return docs, nil
}

// Read is Documents over an io.Reader.
func Read(name string, r io.Reader, f Format) ([]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Documents(name, data, f)
}

func decodeJSON(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var out []any
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = appendDoc(out, v)
	}
}

func decodeYAML(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var out []any
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		v, err := fromNode(&doc)
		if err != nil {
			return nil, err
		}
		if v == nil {
			// empty document between separators
			continue
		}
		out = appendDoc(out, v)
	}
}

func appendDoc(out []any, v any) []any {
	if arr, ok := v.([]any); ok {
		return append(out, arr...)
	}
	return append(out, v)
}

// fromNode converts a YAML node tree into generic values. Mapping keys are
// always strings, and timestamps stay as the text the author wrote so date
// fields keep their original form.
func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if _, dup := m[key]; dup {
				return nil, fmt.Errorf("line %d: duplicate key %q", n.Content[i].Line, key)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
}
