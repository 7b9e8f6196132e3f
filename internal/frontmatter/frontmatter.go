package frontmatter

import (
	"strings"

	"go.yaml.in/yaml/v3"
)

// Delimiter opens and closes the metadata block.
const Delimiter = "---"

// Metadata keys read by Fields.
const (
	KeyDescription  = "description"
	KeyArgumentHint = "argument-hint"
)

// Document is a parsed command document.
type Document struct {
	// Metadata holds the decoded block. It is never nil.
	Metadata map[string]any
	// Body is the text after the closing delimiter, or the whole input when
	// there is no metadata block.
	Body string
}

// strategy decodes the raw text of a metadata block.
type strategy struct {
	name   string
	decode func(block string) (map[string]any, error)
}

// strategies are tried in order; the last one never fails.
var strategies = []strategy{
	{name: "yaml", decode: decodeYAML},
	{name: "lines", decode: decodeLines},
}

// Parse splits text into metadata and body.
func Parse(text string) Document {
	block, body, ok := split(text)
	if !ok {
		return Document{Metadata: map[string]any{}, Body: text}
	}
	meta, _ := decode(block)
	return Document{Metadata: meta, Body: body}
}

// Fields extracts the two metadata fields a command exposes. Values that
// are not strings are ignored.
func Fields(meta map[string]any) (description, argumentHint string) {
	description, _ = meta[KeyDescription].(string)
	argumentHint, _ = meta[KeyArgumentHint].(string)
	return description, argumentHint
}

// decode runs the strategies in order and reports which one succeeded.
func decode(block string) (map[string]any, string) {
	for _, s := range strategies {
		meta, err := s.decode(block)
		if err == nil {
			return meta, s.name
		}
	}
	return map[string]any{}, ""
}

// split locates the metadata block. The first line must be the delimiter
// and a later line must close it; otherwise ok is false.
func split(text string) (block, body string, ok bool) {
	normalized := strings.TrimPrefix(text, "\ufeff")
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")

	lines := strings.Split(normalized, "\n")
	if len(lines) < 2 || strings.TrimRight(lines[0], " \t") != Delimiter {
		return "", "", false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == Delimiter {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", "", false
}

func decodeYAML(block string) (map[string]any, error) {
	var meta map[string]any
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, err
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, nil
}
