package sources

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/sources.schema.json
var schemaBytes []byte

const schemaURL = "sources.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
	printer    = message.NewPrinter(language.English)
)

// Problem is one schema violation in a sources file.
type Problem struct {
	Entry   int    // index into sources, -1 when the problem is not inside an entry
	Field   string // entry field, or the top-level key when Entry is -1
	Keyword string // schema keyword that failed
	Message string
}

func (p Problem) String() string {
	var where string
	switch {
	case p.Entry >= 0 && p.Field != "":
		where = fmt.Sprintf("sources[%d].%s", p.Entry, p.Field)
	case p.Entry >= 0:
		where = fmt.Sprintf("sources[%d]", p.Entry)
	case p.Field != "":
		where = p.Field
	default:
		where = "file"
	}
	return where + ": " + p.Message
}

// InvalidFileError lists every problem found in a sources file.
type InvalidFileError struct {
	Problems []Problem
}

func (e *InvalidFileError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return "invalid sources file: " + strings.Join(parts, "; ")
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if schema, err = c.Compile(schemaURL); err != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Validate checks the contents of a sources file. Schema violations are
// returned as *InvalidFileError; any other error means the YAML could not
// be read at all.
func Validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	// The validator expects JSON values, so numbers go through json.Number.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = sch.Validate(inst)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating sources: %w", err)
	}
	return &InvalidFileError{Problems: problems(ve)}
}

// problems flattens the leaves of a validation error into entry-addressed
// problems, dropping duplicates and the $ref wrappers around each entry.
func problems(root *jsonschema.ValidationError) []Problem {
	var out []Problem
	seen := make(map[Problem]bool)

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(ve.Causes) > 0 {
			for i := len(ve.Causes) - 1; i >= 0; i-- {
				stack = append(stack, ve.Causes[i])
			}
			continue
		}
		if ve.ErrorKind == nil {
			continue
		}
		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 || kw[len(kw)-1] == "$ref" {
			continue
		}

		p := locate(ve.InstanceLocation)
		p.Keyword = kw[len(kw)-1]
		p.Message = ve.ErrorKind.LocalizedString(printer)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		out = append(out, Problem{Entry: -1, Message: root.Error()})
	}
	return out
}

// locate maps an instance location such as ["sources", "2", "path"] onto
// the entry it belongs to.
func locate(loc []string) Problem {
	p := Problem{Entry: -1}
	if len(loc) == 0 {
		return p
	}
	if loc[0] != "sources" || len(loc) == 1 {
		p.Field = strings.Join(loc, ".")
		return p
	}
	i, err := strconv.Atoi(loc[1])
	if err != nil {
		p.Field = strings.Join(loc, ".")
		return p
	}
	p.Entry = i
	p.Field = strings.Join(loc[2:], ".")
	return p
}
