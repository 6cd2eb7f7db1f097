package gateway

import "os"

// ProviderID identifies one entry in the provider registry.
type ProviderID string

const (
	ProviderOpenAI   ProviderID = "openai"
	ProviderGeminis  ProviderID = "google-geminis"
	ProviderMistral  ProviderID = "mistral"
	ProviderClaude   ProviderID = "claude"
	ProviderDeepSeek ProviderID = "deepseek"
	ProviderGroq     ProviderID = "groq"
)

// DefaultProvider is used when callers do not name one.
const DefaultProvider = ProviderGeminis

// transportKind selects the wire client for a provider. Mistral, DeepSeek
// and Groq all expose OpenAI-compatible chat-completion endpoints.
type transportKind string

const (
	kindOpenAI    transportKind = "openai"
	kindAnthropic transportKind = "anthropic"
	kindGemini    transportKind = "gemini"
)

// ProviderConfig is one immutable registry entry.
type ProviderConfig struct {
	Model   string
	BaseURL string // only for OpenAI-compatible hosts; empty means default
	kind    transportKind
	envKey  string // process-wide credential fallback
}

// Registry maps provider ids to their fixed configuration. It is built
// once at construction and never mutated.
type Registry map[ProviderID]ProviderConfig

// DefaultRegistry returns the closed set of supported providers.
func DefaultRegistry() Registry {
	return Registry{
		ProviderOpenAI: {
			Model:  "gpt-4o-mini",
			kind:   kindOpenAI,
			envKey: "OPENAI_API_KEY",
		},
		ProviderGeminis: {
			Model:  "gemini-2.5-flash",
			kind:   kindGemini,
			envKey: "GEMINI_API_KEY",
		},
		ProviderMistral: {
			Model:   "mistral-large-latest",
			BaseURL: "https://api.mistral.ai/v1",
			kind:    kindOpenAI,
			envKey:  "MISTRAL_API_KEY",
		},
		ProviderClaude: {
			Model:  "claude-3-5-sonnet-latest",
			kind:   kindAnthropic,
			envKey: "ANTHROPIC_API_KEY",
		},
		ProviderDeepSeek: {
			Model:   "deepseek-chat",
			BaseURL: "https://api.deepseek.com",
			kind:    kindOpenAI,
			envKey:  "DEEPSEEK_API_KEY",
		},
		ProviderGroq: {
			Model:   "llama-3.3-70b-versatile",
			BaseURL: "https://api.groq.com/openai/v1",
			kind:    kindOpenAI,
			envKey:  "GROQ_API_KEY",
		},
	}
}

// Resolve returns the configuration for a provider id, defaulting the
// empty id. Unknown ids are an ErrUnsupportedProvider.
func (r Registry) Resolve(id ProviderID) (ProviderID, ProviderConfig, error) {
	if id == "" {
		id = DefaultProvider
	}
	cfg, ok := r[id]
	if !ok {
		return id, ProviderConfig{}, &ErrUnsupportedProvider{Provider: id}
	}
	return id, cfg, nil
}

// defaultKey returns the process-wide credential for a provider, which
// may be empty (degraded/dev mode: the call fails at the transport).
func (c ProviderConfig) defaultKey() string {
	return os.Getenv(c.envKey)
}
