package placement

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/linguabridge/backend/internal/models"
	"github.com/linguabridge/backend/internal/writing"
)

// NormOutcome tags how much repair the normalization chain performed.
type NormOutcome int

const (
	// NormClean: the payload already matched the evaluation shape.
	NormClean NormOutcome = iota
	// NormDefaulted: one or more fields were filled with safe defaults.
	NormDefaulted
	// NormReplaced: the payload was not an object at all and was
	// replaced wholesale with the safe-default evaluation.
	NormReplaced
)

const defaultConfidence = 70

const defaultRecommendation = "Continue practicing with level-appropriate exercises and retake the placement test after regular study."

// NormalizeEvaluation repairs a parsed evaluation payload into a
// complete EvaluationResult. Applied in order: a non-empty top-level
// list collapses to its first element; a non-object is replaced with
// the safe default; each missing field gets a type-appropriate default;
// scalar strengths/weaknesses are wrapped into one-element lists.
func NormalizeEvaluation(value any) (models.EvaluationResult, NormOutcome) {
	if list, ok := value.([]any); ok && len(list) > 0 {
		value = list[0]
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return models.EvaluationResult{
			Level:          "A1",
			Confidence:     defaultConfidence,
			Strengths:      []string{"Completed the placement test"},
			Weaknesses:     []string{"Evaluation details unavailable"},
			Recommendation: defaultRecommendation,
		}, NormReplaced
	}

	outcome := NormClean
	defaulted := func() { outcome = NormDefaulted }

	result := models.EvaluationResult{}

	if level, ok := obj["level"].(string); ok && level != "" {
		result.Level = level
	} else {
		result.Level = "A1"
		defaulted()
	}

	if confidence, ok := obj["confidence"].(float64); ok {
		result.Confidence = confidence
	} else {
		result.Confidence = defaultConfidence
		defaulted()
	}

	var wrapped bool
	result.Strengths, wrapped = normalizeTopicList(obj, "strengths")
	if wrapped {
		defaulted()
	}
	result.Weaknesses, wrapped = normalizeTopicList(obj, "weaknesses")
	if wrapped {
		defaulted()
	}

	if rec, ok := obj["recommendation"].(string); ok && rec != "" {
		result.Recommendation = rec
	} else {
		result.Recommendation = defaultRecommendation
		defaulted()
	}

	return result, outcome
}

// normalizeTopicList reads a list-of-strings field, wrapping a bare
// scalar into a one-element list and defaulting anything else to empty.
// The second return reports whether a repair happened.
func normalizeTopicList(obj map[string]any, key string) ([]string, bool) {
	switch v := obj[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, false
	case string:
		return []string{v}, true
	default:
		return []string{}, true
	}
}

func logNormalization(outcome NormOutcome) {
	switch outcome {
	case NormDefaulted:
		log.Printf("WARNING: evaluation payload was missing fields, defaults substituted")
	case NormReplaced:
		log.Printf("WARNING: evaluation payload was not an object, safe default evaluation returned")
	}
}

// parseJSONValue strips markdown code fences and parses the remainder
// as any JSON value. The normalization chain handles shape; only parse
// failure is fatal.
func parseJSONValue(raw string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(writing.StripCodeFences(raw)), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func evaluationPrompt(language string, answers []models.AnswerRecord, correct int) string {
	total := len(answers)
	percentage := float64(correct) / float64(total) * 100

	answerLog, _ := json.MarshalIndent(answers, "", "  ")

	return fmt.Sprintf(`Evaluate the language placement test results for %s:
- Total questions: %d
- Correct answers: %d
- Success rate: %.1f%%

Analyze the following answers:
%s

Provide a detailed evaluation in JSON format:
{
    "level": string,  // Recommended CEFR level (A1-C2)
    "confidence": number,  // Confidence score 0-100
    "strengths": string[],  // List of strong areas
    "weaknesses": string[],  // List of areas to improve
    "recommendation": string  // Learning path recommendation
}`, language, total, correct, percentage, answerLog)
}
