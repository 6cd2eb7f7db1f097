package writing

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/linguabridge/backend/internal/models"
)

// CoerceTask forces raw model output into a validated Task of the given
// type. It parses the JSON, applies the per-type normalization rules,
// stamps identity, and validates against the task schema. Any failure
// here is fatal for the immediate call; the task service decides whether
// a fallback pass is attempted.
func CoerceTask(raw string, taskType models.TaskType) (models.Task, error) {
	payload, err := ParsePayload(raw)
	if err != nil {
		return models.Task{}, err
	}
	return FinalizeTask(payload, taskType)
}

// ParsePayload strips markdown code fences and parses the text as a JSON
// object.
func ParsePayload(raw string) (map[string]any, error) {
	cleaned := StripCodeFences(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &ErrMalformedJSON{Raw: raw, Err: err}
	}
	return payload, nil
}

// FinalizeTask normalizes an already-parsed payload and validates it.
// Split from CoerceTask so the task service can re-run finalization on
// the original payload when verification fails mid-pipeline.
func FinalizeTask(payload map[string]any, taskType models.TaskType) (models.Task, error) {
	normalized := normalizeTaskPayload(payload, taskType)

	if err := validatePayload(taskType, normalized); err != nil {
		return models.Task{}, &ErrSchemaValidation{Payload: normalized, Err: err}
	}

	task := models.Task{
		ID:            normalized["id"].(string),
		Type:          taskType,
		Question:      stringField(normalized, "question"),
		CorrectAnswer: stringField(normalized, "correctAnswer"),
		Description:   stringField(normalized, "description"),
	}
	if taskType == models.TaskMultipleChoice {
		task.Options = stringSlice(normalized["options"])
		if !contains(task.Options, task.CorrectAnswer) {
			return models.Task{}, &ErrSchemaValidation{
				Payload: normalized,
				Err:     fmt.Errorf("correctAnswer %q is not one of the options", task.CorrectAnswer),
			}
		}
	}

	if taskType == models.TaskFillInBlank {
		if n := strings.Count(task.Question, "____"); n != 1 {
			log.Printf("WARNING: fill-in-the-blank question has %d blank markers, expected 1", n)
		}
	}

	return task, nil
}

// normalizeTaskPayload applies the schema normalization rules:
//
//   - fill_in_the_blank: a correctAnswer list collapses to its first
//     element; an empty list collapses to "". Ambiguity is intentionally
//     reduced to a single canonical answer.
//   - id and type are stamped fresh, overwriting anything the model
//     supplied. The model is never trusted to self-assign identity.
//
// The input map is copied, not mutated.
func normalizeTaskPayload(payload map[string]any, taskType models.TaskType) map[string]any {
	normalized := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		normalized[k] = v
	}

	if taskType == models.TaskFillInBlank {
		if list, ok := normalized["correctAnswer"].([]any); ok {
			if len(list) > 0 {
				normalized["correctAnswer"] = list[0]
			} else {
				normalized["correctAnswer"] = ""
			}
		}
	}

	normalized["id"] = uuid.NewString()
	normalized["type"] = string(taskType)

	return normalized
}

// StripCodeFences removes a surrounding markdown code fence, with or
// without a json language tag. Models wrap JSON output this way often
// enough that every parse site goes through it.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

func stringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
