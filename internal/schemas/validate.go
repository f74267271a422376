// Package schemas validates structured model output against embedded JSON Schemas.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Name identifies an embedded schema
type Name string

// Embedded schemas
const (
	// Keywords is an array of {keyword, importance, category} records
	Keywords Name = "keywords"
	// Sections is an array of {section_name, content} records
	Sections Name = "sections"
)

// ValidationError lists the schema violations found in a document
type ValidationError struct {
	Schema Name
	Errors []FieldError
}

// FieldError is one violation. Field is a gojsonschema path such as "0.importance".
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError reports an embedded schema that is missing or does not compile
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Error lists every violation on one line so it fits a log field
func (ve *ValidationError) Error() string {
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("%s schema: %s", ve.Schema, strings.Join(parts, "; "))
}

var (
	compiled   = make(map[Name]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// Validate checks JSON content against the named embedded schema
func Validate(name Name, jsonContent string) error {
	schema, err := load(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to read document for %s schema: %w", name, err)
	}
	return toValidationError(name, result)
}

func load(name Name) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[name]; ok {
		return schema, nil
	}

	path := string(name) + ".schema.json"
	data, err := schemaFiles.ReadFile(path)
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "unknown schema", Cause: err}
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "invalid schema", Cause: err}
	}

	compiled[name] = schema
	return schema, nil
}

func toValidationError(name Name, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
