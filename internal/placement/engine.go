// Package placement drives the adaptive placement test: it owns the
// per-session difficulty state, picks the next task conditioned on the
// previous answer, and aggregates a full answer set into a final
// proficiency evaluation.
package placement

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/linguabridge/backend/internal/gateway"
	"github.com/linguabridge/backend/internal/models"
)

// Caller-contract violations. Surfaced before any model call is made.
var (
	ErrNoAnswers        = errors.New("answers must be a non-empty list")
	ErrLanguageRequired = errors.New("language is required")
	ErrAnswerShape      = errors.New("every answer must carry a boolean isCorrect field")
)

// ErrGeneration wraps any failure while producing the next placement
// task. The engine does not retry or degrade further; the task service
// already applied its own fallback policy.
type ErrGeneration struct {
	Err error
}

func (e *ErrGeneration) Error() string {
	return fmt.Sprintf("failed to generate placement task: %v", e.Err)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }

// TaskGenerator is the slice of the writing service the engine consumes.
type TaskGenerator interface {
	GenerateMultipleChoice(ctx context.Context, language, level string) (models.Task, error)
	GenerateFillInBlank(ctx context.Context, language, level string) (models.Task, error)
}

// Engine is the adaptive placement state machine over CEFR levels.
type Engine struct {
	tasks    TaskGenerator
	client   gateway.Client
	sessions *SessionStore
	provider gateway.ProviderID

	// coin picks the task type for the next question (0 or 1). The
	// default uses the package-level rand source, which is safe for
	// concurrent requests; tests inject a fixed pick.
	coin func() int
}

func NewEngine(tasks TaskGenerator, client gateway.Client, sessions *SessionStore) *Engine {
	return &Engine{
		tasks:    tasks,
		client:   client,
		sessions: sessions,
		provider: gateway.ProviderID(os.Getenv("AI_PROVIDER")),
		coin:     func() int { return rand.Intn(2) },
	}
}

// GenerateTask produces the next question for a session. When a previous
// answer is present the difficulty is adjusted first: one level up on
// correct, one down on incorrect, clamped at the scale edges. Task type
// is a uniform coin flip, independent of level and history.
func (e *Engine) GenerateTask(ctx context.Context, sessionID, language string, previous *models.AnswerRecord) (models.Task, error) {
	sess := e.sessions.Get(sessionID)

	if previous != nil {
		if previous.IsCorrect == nil {
			return models.Task{}, ErrAnswerShape
		}
		sess.Adjust(*previous.IsCorrect)
	}

	var task models.Task
	var err error
	if e.coin() == 0 {
		task, err = e.tasks.GenerateMultipleChoice(ctx, language, sess.Level)
	} else {
		task, err = e.tasks.GenerateFillInBlank(ctx, language, sess.Level)
	}
	if err != nil {
		return models.Task{}, &ErrGeneration{Err: err}
	}

	// Stamp the level so the frontend can track difficulty progression.
	task.Level = sess.Level
	return task, nil
}

// EvaluateResults turns a completed answer log into a proficiency
// evaluation. Input shape is validated defensively before any model
// call; model output shape problems are recovered by the normalization
// chain, and only a hard JSON parse failure propagates as fatal.
func (e *Engine) EvaluateResults(ctx context.Context, answers []models.AnswerRecord, language string) (models.EvaluationResult, error) {
	if len(answers) == 0 {
		return models.EvaluationResult{}, ErrNoAnswers
	}
	if language == "" {
		return models.EvaluationResult{}, ErrLanguageRequired
	}
	for _, a := range answers {
		if a.IsCorrect == nil {
			return models.EvaluationResult{}, ErrAnswerShape
		}
	}

	correct := 0
	for _, a := range answers {
		if *a.IsCorrect {
			correct++
		}
	}

	raw, err := e.client.Generate(ctx, gateway.Request{
		Prompt:   evaluationPrompt(language, answers, correct),
		Format:   gateway.FormatJSON,
		Provider: e.provider,
	})
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("evaluate test results: %w", err)
	}

	parsed, err := parseJSONValue(raw)
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("parse evaluation response: %w", err)
	}

	result, outcome := NormalizeEvaluation(parsed)
	if outcome != NormClean {
		// Recovered rather than failed: defaults were substituted for
		// missing or malformed fields.
		logNormalization(outcome)
	}
	return result, nil
}
