package writing

import (
	"errors"
	"strings"
	"testing"

	"github.com/linguabridge/backend/internal/models"
)

func validMultipleChoiceJSON() string {
	return `{
		"question": "Elle ____ au marché tous les samedis.",
		"options": ["va", "vas", "allez", "vont"],
		"correctAnswer": "va"
	}`
}

func TestCoerceTask_MultipleChoice(t *testing.T) {
	task, err := CoerceTask(validMultipleChoiceJSON(), models.TaskMultipleChoice)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if task.Type != models.TaskMultipleChoice {
		t.Errorf("type = %q, want multiple_choice", task.Type)
	}
	if task.ID == "" {
		t.Error("expected a generated id")
	}
	if len(task.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(task.Options))
	}
	if task.CorrectAnswer != "va" {
		t.Errorf("correctAnswer = %q, want va", task.CorrectAnswer)
	}
}

func TestCoerceTask_StripsCodeFences(t *testing.T) {
	raw := "```json\n" + validMultipleChoiceJSON() + "\n```"
	if _, err := CoerceTask(raw, models.TaskMultipleChoice); err != nil {
		t.Fatalf("expected fenced JSON to parse, got: %v", err)
	}
}

func TestCoerceTask_AnswerListCollapsesToFirst(t *testing.T) {
	raw := `{"question": "I ____ to school. (go)", "correctAnswer": ["run", "runs"]}`

	task, err := CoerceTask(raw, models.TaskFillInBlank)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if task.CorrectAnswer != "run" {
		t.Errorf("correctAnswer = %q, want run", task.CorrectAnswer)
	}
}

func TestCoerceTask_EmptyAnswerListBecomesEmptyString(t *testing.T) {
	raw := `{"question": "I ____ to school. (go)", "correctAnswer": []}`

	task, err := CoerceTask(raw, models.TaskFillInBlank)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if task.CorrectAnswer != "" {
		t.Errorf("correctAnswer = %q, want empty string", task.CorrectAnswer)
	}
}

func TestCoerceTask_StampsFreshIdentityEveryTime(t *testing.T) {
	raw := `{"id": "model-made-this-up", "type": "essay", "question": "She ____ happy. (to be)", "correctAnswer": "is"}`

	first, err := CoerceTask(raw, models.TaskFillInBlank)
	if err != nil {
		t.Fatalf("first coercion failed: %v", err)
	}
	second, err := CoerceTask(raw, models.TaskFillInBlank)
	if err != nil {
		t.Fatalf("second coercion failed: %v", err)
	}

	if first.ID == "model-made-this-up" || second.ID == "model-made-this-up" {
		t.Error("model-supplied id must be overwritten")
	}
	if first.ID == second.ID {
		t.Error("each coercion must stamp a distinct id")
	}
	if first.Type != second.Type || first.Type != models.TaskFillInBlank {
		t.Errorf("type stamping not idempotent: %q vs %q", first.Type, second.Type)
	}
}

func TestCoerceTask_RejectsWrongOptionCount(t *testing.T) {
	for _, raw := range []string{
		`{"question": "Pick one.", "options": ["a", "b", "c"], "correctAnswer": "a"}`,
		`{"question": "Pick one.", "options": ["a", "b", "c", "d", "e"], "correctAnswer": "a"}`,
	} {
		_, err := CoerceTask(raw, models.TaskMultipleChoice)
		var schemaErr *ErrSchemaValidation
		if !errors.As(err, &schemaErr) {
			t.Errorf("expected ErrSchemaValidation for %s, got: %v", raw, err)
		}
	}
}

func TestCoerceTask_RejectsDuplicateOptions(t *testing.T) {
	raw := `{"question": "Pick one.", "options": ["a", "a", "b", "c"], "correctAnswer": "a"}`

	_, err := CoerceTask(raw, models.TaskMultipleChoice)
	var schemaErr *ErrSchemaValidation
	if !errors.As(err, &schemaErr) {
		t.Errorf("expected ErrSchemaValidation for duplicate options, got: %v", err)
	}
}

func TestCoerceTask_RejectsAnswerOutsideOptions(t *testing.T) {
	raw := `{"question": "Pick one.", "options": ["a", "b", "c", "d"], "correctAnswer": "z"}`

	_, err := CoerceTask(raw, models.TaskMultipleChoice)
	var schemaErr *ErrSchemaValidation
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected ErrSchemaValidation, got: %v", err)
	}
	if !strings.Contains(schemaErr.Err.Error(), "not one of the options") {
		t.Errorf("unexpected constraint message: %v", schemaErr.Err)
	}
}

func TestCoerceTask_MalformedJSONKeepsRawText(t *testing.T) {
	raw := "The model wrote an apology instead of JSON."

	_, err := CoerceTask(raw, models.TaskMultipleChoice)
	var malformed *ErrMalformedJSON
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedJSON, got: %v", err)
	}
	if malformed.Raw != raw {
		t.Errorf("raw text not attached: %q", malformed.Raw)
	}
}

func TestNormalizeTaskPayload_DoesNotMutateInput(t *testing.T) {
	payload := map[string]any{
		"question":      "She ____ happy.",
		"correctAnswer": []any{"is", "was"},
	}

	normalizeTaskPayload(payload, models.TaskFillInBlank)

	if _, isList := payload["correctAnswer"].([]any); !isList {
		t.Error("input payload was mutated")
	}
	if _, stamped := payload["id"]; stamped {
		t.Error("input payload received an id stamp")
	}
}
