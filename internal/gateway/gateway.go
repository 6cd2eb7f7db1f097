// Package gateway abstracts chat-completion calls over multiple LLM
// providers behind one request/response contract. It resolves provider,
// model and credentials per call, enforces a per-call timeout, and
// normalizes output into raw text the coercion layer can parse.
package gateway

import (
	"context"
	"errors"
	"time"
)

// DefaultSystemPrompt sets the model's role for every task-generation call.
const DefaultSystemPrompt = "You are a philologist with over 20 years of experience in language education."

// CallTimeout is the fixed upper bound for one outbound provider call.
const CallTimeout = 45 * time.Second

// ResponseFormat requests either a JSON object or free text completion.
type ResponseFormat string

const (
	FormatJSON ResponseFormat = "json"
	FormatText ResponseFormat = "text"
)

// Request describes one completion call.
type Request struct {
	Prompt       string
	SystemPrompt string // empty means DefaultSystemPrompt
	Format       ResponseFormat
	Provider     ProviderID // empty means DefaultProvider

	// UserKey, when non-nil, is a per-user credential and is mandatory:
	// a nil-pointer means "use process defaults", a pointer to the empty
	// string means the user's token is missing for this provider.
	// Reserved for callers that carry user tokens; the task and
	// placement services run on process-wide credentials and leave it
	// nil.
	UserKey *string
}

// Client is what pipeline components depend on. Satisfied by Gateway and
// by the test/dev mock.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// transport performs the provider-specific wire call and returns the
// completion's text content, or "" when the provider produced none.
type transport interface {
	complete(ctx context.Context, cfg ProviderConfig, apiKey string, req Request) (string, error)
}

// Gateway routes requests through an immutable provider registry.
// It performs no retries; bounding latency per user-facing request is
// the point, so retries are left to callers that want them.
type Gateway struct {
	registry   Registry
	transports map[transportKind]transport
	timeout    time.Duration
}

func New(registry Registry) *Gateway {
	return &Gateway{
		registry: registry,
		transports: map[transportKind]transport{
			kindOpenAI:    &openAITransport{},
			kindAnthropic: &anthropicTransport{},
			kindGemini:    &geminiTransport{},
		},
		timeout: CallTimeout,
	}
}

// Generate resolves the provider, runs the completion under the call
// timeout, and returns the completion text. Empty completion content is
// an ErrEmptyResponse, never silently returned.
func (g *Gateway) Generate(ctx context.Context, req Request) (string, error) {
	id, cfg, err := g.registry.Resolve(req.Provider)
	if err != nil {
		return "", err
	}

	apiKey := cfg.defaultKey()
	if req.UserKey != nil {
		if *req.UserKey == "" {
			return "", &ErrMissingCredential{Provider: id}
		}
		apiKey = *req.UserKey
	}

	if req.SystemPrompt == "" {
		req.SystemPrompt = DefaultSystemPrompt
	}
	if req.Format == "" {
		req.Format = FormatJSON
	}

	tr := g.transports[cfg.kind]

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := tr.complete(callCtx, cfg, apiKey, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &ErrTimeout{Provider: id, Err: err}
		}
		return "", &ErrProvider{Provider: id, Err: err}
	}

	if content == "" {
		return "", &ErrEmptyResponse{Provider: id}
	}

	return content, nil
}
