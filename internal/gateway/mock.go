package gateway

import (
	"context"
	"strings"
)

// MockClient is a scripted Client for tests and local development.
type MockClient struct {
	// Response is returned verbatim when Fn is nil.
	Response string
	// Err, when set, is returned instead of a response.
	Err error
	// Fn, when set, computes the response per request.
	Fn func(req Request) (string, error)
	// Calls counts Generate invocations, including failed ones.
	Calls int
	// Requests records every request seen, for assertions.
	Requests []Request
}

func (m *MockClient) Generate(ctx context.Context, req Request) (string, error) {
	m.Calls++
	m.Requests = append(m.Requests, req)
	if m.Fn != nil {
		return m.Fn(req)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// NewCannedClient returns a mock that answers generation prompts with
// plausible task JSON, keyed off the prompt text. Used when the server
// runs without provider credentials (MOCK_GATEWAY=true).
func NewCannedClient() *MockClient {
	return &MockClient{
		Fn: func(req Request) (string, error) {
			switch {
			case strings.Contains(req.Prompt, "fill-in-the-blank"):
				return `{"question":"[Mock] I ____ to the park every morning. (go)","correctAnswer":["go"]}`, nil
			case strings.Contains(req.Prompt, "placement test"):
				return `{"level":"B1","confidence":72,"strengths":["vocabulary"],"weaknesses":["verb tenses"],"recommendation":"[Mock] Practice past tense forms with short daily writing exercises."}`, nil
			case strings.Contains(req.Prompt, "User's answer"):
				return `{"is_correct":false,"explanation":"[Mock] The verb form does not agree with the subject.","topics_to_review":["Subject-verb agreement"]}`, nil
			default:
				return `{"question":"[Mock] She ____ breakfast every day. Which option completes the sentence?","options":["eat","eats","eating","eaten"],"correctAnswer":"eats"}`, nil
			}
		},
	}
}
