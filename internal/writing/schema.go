package writing

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/linguabridge/backend/internal/models"
)

// Task schemas validated after normalization. The coercion layer stamps
// id and type itself, so both are required here.

var multipleChoiceSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "type", "question", "options", "correctAnswer"},
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"type":     map[string]any{"const": "multiple_choice"},
		"question": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string", "minLength": 1},
			"minItems":    4,
			"maxItems":    4,
			"uniqueItems": true,
		},
		"correctAnswer": map[string]any{"type": "string", "minLength": 1},
		"description":   map[string]any{"type": "string"},
		"level":         map[string]any{"type": "string"},
	},
}

var fillInBlankSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "type", "question", "correctAnswer"},
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"type":     map[string]any{"const": "fill_in_the_blank"},
		"question": map[string]any{"type": "string", "minLength": 1},
		// The empty string is allowed: an empty model answer list is
		// collapsed to "" by design, not rejected.
		"correctAnswer": map[string]any{"type": "string"},
		"description":   map[string]any{"type": "string"},
		"level":         map[string]any{"type": "string"},
	},
}

func schemaFor(taskType models.TaskType) (string, map[string]any) {
	if taskType == models.TaskMultipleChoice {
		return "multiple-choice-task", multipleChoiceSchema
	}
	return "fill-in-the-blank-task", fillInBlankSchema
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validatePayload validates a normalized payload against the schema for
// its task type.
func validatePayload(taskType models.TaskType, payload map[string]any) error {
	name, def := schemaFor(taskType)

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	// Round-trip so numbers and nested values have the plain shapes the
	// validator expects.
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("reparse payload: %w", err)
	}

	return compiled.Validate(parsed)
}

func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
