package models

// WritingTaskRequest is the body for the direct writing-task endpoints.
type WritingTaskRequest struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// ExplainAnswerRequest is the body for POST /writing/explainanswer.
type ExplainAnswerRequest struct {
	Language      string `json:"language"`
	Level         string `json:"level"`
	Task          string `json:"task"`
	CorrectAnswer string `json:"correct_answer"`
	UserAnswer    string `json:"user_answer"`
}

// PlacementTaskRequest is the body for POST /placement/task.
// SessionID scopes the adaptive difficulty state; callers that omit it
// share the "default" session.
type PlacementTaskRequest struct {
	Language       string        `json:"language"`
	SessionID      string        `json:"sessionId,omitempty"`
	PreviousAnswer *AnswerRecord `json:"previousAnswer,omitempty"`
}

// EvaluateTestRequest is the body for POST /placement/evaluate.
type EvaluateTestRequest struct {
	Answers  []AnswerRecord `json:"answers"`
	Language string         `json:"language"`
}
