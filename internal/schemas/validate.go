// Package schemas validates the JSON reports the CLI emits against embedded
// JSON Schemas.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const rankedCandidatesSchemaName = "ranked_candidates.schema.json"

//go:embed ranked_candidates.schema.json
var rankedCandidatesSchema string

// RankedCandidatesSchema returns the schema of the JSON ranking report.
func RankedCandidatesSchema() string {
	return rankedCandidatesSchema
}

var compiledRankedCandidates = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return compile(rankedCandidatesSchemaName, rankedCandidatesSchema)
})

// ValidationError lists every problem found in a report
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one problem at a JSON path
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

func (ve *ValidationError) add(field, message string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Message: message})
}

// SchemaLoadError means the schema itself could not be compiled
type SchemaLoadError struct {
	Name  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Name, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateRankedCandidates checks a JSON ranking report against the embedded
// schema, then checks ordering the schema cannot express: ranks run 1..n and
// relevance scores never increase down the list.
func ValidateRankedCandidates(jsonContent []byte) error {
	schema, err := compiledRankedCandidates()
	if err != nil {
		return err
	}
	if err := validate(schema, string(jsonContent)); err != nil {
		return err
	}

	var report struct {
		Ranked []struct {
			Rank           int     `json:"rank"`
			RelevanceScore float64 `json:"relevance_score"`
		} `json:"ranked"`
	}
	if err := json.Unmarshal(jsonContent, &report); err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}

	ve := &ValidationError{}
	for i, c := range report.Ranked {
		field := fmt.Sprintf("ranked.%d", i)
		if c.Rank != i+1 {
			ve.add(field+".rank", fmt.Sprintf("expected rank %d, got %d", i+1, c.Rank))
		}
		if i > 0 && c.RelevanceScore > report.Ranked[i-1].RelevanceScore {
			ve.add(field+".relevance_score", "scores must be in descending order")
		}
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func compile(name, content string) (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Name: name, Cause: err}
	}
	return schema, nil
}

func validate(schema *gojsonschema.Schema, jsonContent string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		// Malformed documents surface here rather than as result errors.
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.add(field, desc.Description())
	}
	return ve
}
