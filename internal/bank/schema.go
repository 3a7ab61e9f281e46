package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema describes the structural shape of a bank file. Type-specific
// invariants (choice presence, index bounds, canonical answer) are enforced
// by Question.Validate, which can name the offending question.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "integer"},
					"question":   map[string]any{"type": "string"},
					"type":       map[string]any{"type": "string", "enum": []any{"mcq", "short"}},
					"difficulty": map[string]any{"type": "string"},
					"topic":      map[string]any{"type": "string"},
					"tags": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"explanation": map[string]any{"type": "string"},
					"choices": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correct": map[string]any{"type": "integer"},
					"answer":  map[string]any{"type": "string"},
				},
				"required": []any{"id", "question", "type", "difficulty", "topic", "tags", "explanation"},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateBankShape checks a parsed bank file against the bank schema.
// Returns a *MalformedBankError on violation.
func validateBankShape(parsed any) error {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile bank schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return &MalformedBankError{Reason: "bank file does not match schema", Err: err}
	}
	return nil
}
