package writing

import "fmt"

// ErrInvalidLevel indicates the requested CEFR level has no context in
// the retrieval store. Raised before any model call.
type ErrInvalidLevel struct {
	Level string
}

func (e *ErrInvalidLevel) Error() string {
	return fmt.Sprintf("invalid level: %q", e.Level)
}

// ErrMalformedJSON indicates model output that is not parseable JSON.
// Raw keeps the offending text for diagnostics.
type ErrMalformedJSON struct {
	Raw string
	Err error
}

func (e *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %v", e.Err)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }

// ErrSchemaValidation indicates a parsed payload that violates the task
// schema after normalization. Fatal for the immediate call; any fallback
// happens one level up in the task service.
type ErrSchemaValidation struct {
	Payload map[string]any
	Err     error
}

func (e *ErrSchemaValidation) Error() string {
	return fmt.Sprintf("task failed schema validation: %v", e.Err)
}

func (e *ErrSchemaValidation) Unwrap() error { return e.Err }
