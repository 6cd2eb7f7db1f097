package writing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/linguabridge/backend/internal/gateway"
	"github.com/linguabridge/backend/internal/models"
)

// Verifier re-submits a generated task to a language-specific critique
// prompt and parses the verdict. Verification is opt-in per language:
// only languages with a critique prompt are ever checked, everything
// else short-circuits to valid without a model call.
type Verifier struct {
	client   gateway.Client
	provider gateway.ProviderID
}

// NewVerifier routes critique calls to the given provider, which may
// differ from the one that generated the task.
func NewVerifier(client gateway.Client, provider gateway.ProviderID) *Verifier {
	return &Verifier{client: client, provider: provider}
}

// Verify never fails: every error on the critique path degrades to a
// valid verdict so a broken verifier cannot block task delivery. The
// fallible path lives in critique; this method is the single place the
// fail-open mapping happens.
func (v *Verifier) Verify(ctx context.Context, task models.Task, language string) models.VerificationResult {
	prompt, ok := critiquePromptFor(language, task)
	if !ok {
		return models.VerificationResult{IsValid: true}
	}

	result, err := v.critique(ctx, prompt)
	if err != nil {
		log.Printf("WARN: verification failed for %s task %s: %v, keeping original", language, task.ID, err)
		return models.VerificationResult{IsValid: true}
	}
	return result
}

func (v *Verifier) critique(ctx context.Context, prompt string) (models.VerificationResult, error) {
	raw, err := v.client.Generate(ctx, gateway.Request{
		Prompt:   prompt,
		Format:   gateway.FormatJSON,
		Provider: v.provider,
	})
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("critique call failed: %w", err)
	}

	cleaned := StripCodeFences(raw)
	var result models.VerificationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return models.VerificationResult{}, fmt.Errorf("parse critique response: %w", err)
	}

	// Models are not trusted to honor the contract: a valid verdict must
	// never carry a substitution.
	if result.IsValid {
		result.BetterTask = nil
	}

	return result, nil
}

// applyBetterTask overlays the fields present in a partial correction
// onto the original payload. Absent fields keep the original values; a
// corrected answer list collapses to its first entry.
func applyBetterTask(payload map[string]any, better *models.BetterTask) map[string]any {
	merged := make(map[string]any, len(payload))
	for k, v := range payload {
		merged[k] = v
	}

	if better.Question != nil {
		merged["question"] = *better.Question
	}
	if len(better.Options) > 0 {
		options := make([]any, len(better.Options))
		for i, o := range better.Options {
			options[i] = o
		}
		merged["options"] = options
	}
	if len(better.CorrectAnswer) > 0 {
		merged["correctAnswer"] = better.CorrectAnswer[0]
	}

	return merged
}
