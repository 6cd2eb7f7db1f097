package writing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/linguabridge/backend/internal/gateway"
	"github.com/linguabridge/backend/internal/levels"
	"github.com/linguabridge/backend/internal/models"
)

// Service composes retrieval context, prompt templates, the model
// gateway, coercion and verification into the task-producing operations.
type Service struct {
	client        gateway.Client
	store         *levels.Store
	verifier      *Verifier
	provider      gateway.ProviderID
	verifyEnabled bool
}

func NewService(client gateway.Client, store *levels.Store) *Service {
	provider := gateway.ProviderID(os.Getenv("AI_PROVIDER"))

	verifierProvider := gateway.ProviderID(os.Getenv("VERIFIER_PROVIDER"))
	if verifierProvider == "" {
		verifierProvider = provider
	}

	verifyEnabled := os.Getenv("VERIFICATION_ENABLED") != "false"

	log.Printf("Writing service: provider=%q verifier=%q verification=%v",
		provider, verifierProvider, verifyEnabled)

	return &Service{
		client:        client,
		store:         store,
		verifier:      NewVerifier(client, verifierProvider),
		provider:      provider,
		verifyEnabled: verifyEnabled,
	}
}

// GenerateMultipleChoice produces a verified multiple-choice task for
// the language and level.
func (s *Service) GenerateMultipleChoice(ctx context.Context, language, level string) (models.Task, error) {
	levelCtx := s.store.LevelContext(level, "writing")
	if levelCtx == nil {
		return models.Task{}, &ErrInvalidLevel{Level: level}
	}

	raw, err := s.client.Generate(ctx, gateway.Request{
		Prompt:   multipleChoicePrompt(language, level, levelCtx),
		Format:   gateway.FormatJSON,
		Provider: s.provider,
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("generate multiple choice task: %w", err)
	}

	payload, err := ParsePayload(raw)
	if err != nil {
		return models.Task{}, err
	}

	task, err := FinalizeTask(payload, models.TaskMultipleChoice)
	if err != nil {
		// Best-effort policy: retry finalization once on the payload we
		// have before surfacing a hard error.
		return fallbackFinalize(payload, models.TaskMultipleChoice, err)
	}

	if !s.verifyEnabled {
		return task, nil
	}

	verdict := s.verifier.Verify(ctx, task, language)
	if verdict.IsValid || verdict.BetterTask == nil {
		return task, nil
	}

	merged := applyBetterTask(payload, verdict.BetterTask)
	improved, err := FinalizeTask(merged, models.TaskMultipleChoice)
	if err != nil {
		log.Printf("WARN: substituted task failed validation: %v, keeping original", err)
		return fallbackFinalize(payload, models.TaskMultipleChoice, err)
	}

	return improved, nil
}

// GenerateFillInBlank produces a fill-in-the-blank task. Fill-in-blank
// tasks are not run through verification; only multiple choice is.
func (s *Service) GenerateFillInBlank(ctx context.Context, language, level string) (models.Task, error) {
	levelCtx := s.store.LevelContext(level, "writing")
	if levelCtx == nil {
		return models.Task{}, &ErrInvalidLevel{Level: level}
	}

	raw, err := s.client.Generate(ctx, gateway.Request{
		Prompt:   fillInBlankPrompt(language, level, levelCtx),
		Format:   gateway.FormatJSON,
		Provider: s.provider,
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("generate fill in blank task: %w", err)
	}

	return CoerceTask(raw, models.TaskFillInBlank)
}

// ExplainAnswer judges a user's answer with a single model call.
func (s *Service) ExplainAnswer(ctx context.Context, req models.ExplainAnswerRequest) (models.ExplanationResult, error) {
	raw, err := s.client.Generate(ctx, gateway.Request{
		Prompt:   explainAnswerPrompt(req),
		Format:   gateway.FormatJSON,
		Provider: s.provider,
	})
	if err != nil {
		return models.ExplanationResult{}, fmt.Errorf("explain answer: %w", err)
	}

	cleaned := StripCodeFences(raw)
	var payload struct {
		IsCorrect      bool     `json:"is_correct"`
		Explanation    string   `json:"explanation"`
		TopicsToReview []string `json:"topics_to_review"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return models.ExplanationResult{}, &ErrMalformedJSON{Raw: raw, Err: err}
	}

	return models.ExplanationResult{
		IsCorrect:      payload.IsCorrect,
		Explanation:    payload.Explanation,
		TopicsToReview: payload.TopicsToReview,
	}, nil
}

// fallbackFinalize attempts one last finalization pass of the original
// payload. A task that fails schema validation even here is a fatal
// error surfaced to the caller.
func fallbackFinalize(payload map[string]any, taskType models.TaskType, cause error) (models.Task, error) {
	task, err := FinalizeTask(payload, taskType)
	if err != nil {
		return models.Task{}, fmt.Errorf("task invalid even on fallback path: %w", err)
	}
	log.Printf("WARN: returning unverified task after pipeline error: %v", cause)
	return task, nil
}
