package writing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/linguabridge/backend/internal/gateway"
	"github.com/linguabridge/backend/internal/levels"
	"github.com/linguabridge/backend/internal/models"
)

func newTestService(client gateway.Client, verifier *Verifier) *Service {
	return &Service{
		client:        client,
		store:         levels.NewStore(),
		verifier:      verifier,
		verifyEnabled: verifier != nil,
	}
}

func TestGenerateMultipleChoice_HappyPath(t *testing.T) {
	mock := &gateway.MockClient{Response: validMultipleChoiceJSON()}
	s := newTestService(mock, nil)

	task, err := s.GenerateMultipleChoice(context.Background(), "French", "B1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if task.Type != models.TaskMultipleChoice {
		t.Errorf("type = %q", task.Type)
	}
	if mock.Calls != 1 {
		t.Errorf("expected exactly one gateway call, got %d", mock.Calls)
	}
	if !strings.Contains(mock.Requests[0].Prompt, "B1 level") {
		t.Error("prompt must embed the requested level")
	}
	if !strings.Contains(mock.Requests[0].Prompt, "I can write simple connected text") {
		t.Error("prompt must embed the level's writing context")
	}
}

func TestGenerateMultipleChoice_InvalidLevelNoModelCall(t *testing.T) {
	mock := &gateway.MockClient{Response: validMultipleChoiceJSON()}
	s := newTestService(mock, nil)

	_, err := s.GenerateMultipleChoice(context.Background(), "French", "Z9")

	var invalid *ErrInvalidLevel
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidLevel, got: %v", err)
	}
	if mock.Calls != 0 {
		t.Errorf("expected no gateway call for invalid level, got %d", mock.Calls)
	}
}

func TestGenerateMultipleChoice_VerificationSubstitution(t *testing.T) {
	mock := &gateway.MockClient{
		Fn: func(req gateway.Request) (string, error) {
			if strings.Contains(req.Prompt, "Vérifiez") {
				return `{"is_valid": false, "better_task": {"correctAnswer": ["vont"]}}`, nil
			}
			return validMultipleChoiceJSON(), nil
		},
	}
	s := newTestService(mock, NewVerifier(mock, ""))

	task, err := s.GenerateMultipleChoice(context.Background(), "French", "B1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if task.CorrectAnswer != "vont" {
		t.Errorf("substituted answer = %q, want vont", task.CorrectAnswer)
	}
	if len(task.Options) != 4 {
		t.Errorf("absent better_task fields must keep originals, options = %v", task.Options)
	}
	if mock.Calls != 2 {
		t.Errorf("expected generation + critique calls, got %d", mock.Calls)
	}
}

func TestGenerateMultipleChoice_BrokenSubstitutionKeepsOriginal(t *testing.T) {
	mock := &gateway.MockClient{
		Fn: func(req gateway.Request) (string, error) {
			if strings.Contains(req.Prompt, "Vérifiez") {
				// The "improved" answer is not among the options, so the
				// substituted task fails validation.
				return `{"is_valid": false, "better_task": {"correctAnswer": ["croissant"]}}`, nil
			}
			return validMultipleChoiceJSON(), nil
		},
	}
	s := newTestService(mock, NewVerifier(mock, ""))

	task, err := s.GenerateMultipleChoice(context.Background(), "French", "B1")
	if err != nil {
		t.Fatalf("expected fallback to original task, got: %v", err)
	}
	if task.CorrectAnswer != "va" {
		t.Errorf("fallback answer = %q, want original va", task.CorrectAnswer)
	}
}

func TestGenerateMultipleChoice_UnverifiedLanguageSkipsCritique(t *testing.T) {
	mock := &gateway.MockClient{Response: validMultipleChoiceJSON()}
	s := newTestService(mock, NewVerifier(mock, ""))

	_, err := s.GenerateMultipleChoice(context.Background(), "Spanish", "B1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mock.Calls != 1 {
		t.Errorf("expected only the generation call, got %d", mock.Calls)
	}
}

func TestGenerateFillInBlank_NeverVerified(t *testing.T) {
	mock := &gateway.MockClient{
		Response: `{"question": "Je ____ du café. (drink)", "correctAnswer": ["bois"]}`,
	}
	s := newTestService(mock, NewVerifier(mock, ""))

	task, err := s.GenerateFillInBlank(context.Background(), "French", "A2")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if task.CorrectAnswer != "bois" {
		t.Errorf("correctAnswer = %q", task.CorrectAnswer)
	}
	if mock.Calls != 1 {
		t.Errorf("fill-in-blank must not trigger a critique call, got %d", mock.Calls)
	}
}

func TestGenerateFillInBlank_SchemaFailureIsFatal(t *testing.T) {
	mock := &gateway.MockClient{Response: `{"correctAnswer": ["bois"]}`}
	s := newTestService(mock, nil)

	_, err := s.GenerateFillInBlank(context.Background(), "French", "A2")

	var schemaErr *ErrSchemaValidation
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected ErrSchemaValidation for missing question, got: %v", err)
	}
}

func TestExplainAnswer(t *testing.T) {
	mock := &gateway.MockClient{
		Response: `{"is_correct": false, "explanation": "Wrong tense.", "topics_to_review": ["Past tense"]}`,
	}
	s := newTestService(mock, nil)

	result, err := s.ExplainAnswer(context.Background(), models.ExplainAnswerRequest{
		Language:      "English",
		Level:         "B1",
		Task:          "She ____ to school yesterday.",
		CorrectAnswer: "went",
		UserAnswer:    "goes",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.IsCorrect {
		t.Error("expected an incorrect judgment")
	}
	if result.Explanation != "Wrong tense." {
		t.Errorf("explanation = %q", result.Explanation)
	}
	if len(result.TopicsToReview) != 1 {
		t.Errorf("topics = %v", result.TopicsToReview)
	}
}

func TestExplainAnswer_MalformedJSONIsFatal(t *testing.T) {
	mock := &gateway.MockClient{Response: "sorry, no JSON today"}
	s := newTestService(mock, nil)

	_, err := s.ExplainAnswer(context.Background(), models.ExplainAnswerRequest{
		Language: "English", Level: "B1", Task: "x", CorrectAnswer: "y", UserAnswer: "z",
	})

	var malformed *ErrMalformedJSON
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedJSON, got: %v", err)
	}
}
