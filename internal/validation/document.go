// Package validation checks decoded configuration documents against JSON
// Schema (draft 2020-12) before they are mapped onto Go types.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid   = errors.New("validation: schema invalid")
	ErrDocumentInvalid = errors.New("validation: document invalid")
)

// Issue is one failed constraint, located by JSON pointer.
type Issue struct {
	Location string
	Message  string
}

// DocumentError lists every constraint a document failed.
type DocumentError struct {
	Issues []Issue
	Cause  error
}

func (e *DocumentError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentError) Unwrap() error {
	return ErrDocumentInvalid
}

// Issues extracts the failed constraints from err.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}
	var docErr *DocumentError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	return []Issue{{Message: err.Error()}}
}

// Validator is a compiled JSON Schema. It is safe for concurrent use.
type Validator struct {
	name   string
	schema *jsonschema.Schema
}

// Compile parses a JSON Schema document.
func Compile(name string, schema []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
	}
	return &Validator{name: name, schema: compiled}, nil
}

// MustCompile is Compile for schemas embedded in the binary.
func MustCompile(name string, schema []byte) *Validator {
	v, err := Compile(name, schema)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks doc, which may come from any decoder producing maps,
// slices and scalars. It is normalised through JSON first so YAML integers
// and typed maps validate the same way as JSON input.
func (v *Validator) Validate(doc any) error {
	normalized, err := normalize(doc)
	if err != nil {
		return &DocumentError{Cause: err, Issues: []Issue{{Message: err.Error()}}}
	}
	if err := v.schema.Validate(normalized); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &DocumentError{Issues: collectIssues(validationErr), Cause: err}
		}
		return &DocumentError{Issues: []Issue{{Message: err.Error()}}, Cause: err}
	}
	return nil
}

func normalize(doc any) (any, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
