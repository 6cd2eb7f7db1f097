package models

// TaskType discriminates the two exercise variants.
type TaskType string

const (
	TaskMultipleChoice TaskType = "multiple_choice"
	TaskFillInBlank    TaskType = "fill_in_the_blank"
)

// Task is a single generated exercise. Immutable once constructed and
// request-scoped: tasks are never persisted.
//
// Type determines which optional fields are populated. Options is present
// only for multiple_choice and must hold exactly 4 distinct strings.
type Task struct {
	ID            string   `json:"id"`
	Type          TaskType `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Description   string   `json:"description,omitempty"`

	// Level is stamped by the placement engine so the frontend can track
	// difficulty progression. Empty for direct writing-task requests.
	Level string `json:"level,omitempty"`
}

// BetterTask is a partial corrected task returned by the verification
// critique. Only non-nil fields override the original task.
type BetterTask struct {
	Question      *string  `json:"question,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer []string `json:"correctAnswer,omitempty"`
}

// VerificationResult is the verdict from the secondary critique pass.
// When IsValid is true, BetterTask must be ignored even if the model
// populated it; upstream models are not trusted to honor the contract.
type VerificationResult struct {
	IsValid     bool        `json:"is_valid"`
	BetterTask  *BetterTask `json:"better_task,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
}

// ExplanationResult judges a user's answer to a task.
type ExplanationResult struct {
	IsCorrect      bool     `json:"isCorrect"`
	Explanation    string   `json:"explanation"`
	TopicsToReview []string `json:"topicsToReview,omitempty"`
}

// AnswerRecord is one answered placement question as reported by the client.
// IsCorrect is a pointer so a missing field can be told apart from false.
type AnswerRecord struct {
	Question   string `json:"question,omitempty"`
	UserAnswer string `json:"userAnswer,omitempty"`
	IsCorrect  *bool  `json:"isCorrect"`
	Level      string `json:"level,omitempty"`
}

// EvaluationResult is the final proficiency evaluation for a completed
// placement test. All five fields are always populated; missing or
// malformed model output is filled with safe defaults.
type EvaluationResult struct {
	Level          string   `json:"level"`
	Confidence     float64  `json:"confidence"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
}
