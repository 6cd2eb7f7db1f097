package gateway

import "fmt"

// ErrUnsupportedProvider indicates the requested provider id is not in
// the registry.
type ErrUnsupportedProvider struct {
	Provider ProviderID
}

func (e *ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported AI provider: %q", e.Provider)
}

// ErrMissingCredential indicates the caller asked for per-user
// credentials but none were supplied for the resolved provider.
type ErrMissingCredential struct {
	Provider ProviderID
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("AI API key is missing for provider %q", e.Provider)
}

// ErrTimeout indicates the provider call exceeded the per-call deadline.
type ErrTimeout struct {
	Provider ProviderID
	Err      error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("provider %q timed out: %v", e.Provider, e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider returned a completion with no
// text content. Distinct from transport failures: callers must not treat
// empty content as valid JSON.
type ErrEmptyResponse struct {
	Provider ProviderID
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("provider %q returned empty content", e.Provider)
}

// ErrProvider wraps a transport-level failure (non-2xx, network error).
type ErrProvider struct {
	Provider ProviderID
	Err      error
}

func (e *ErrProvider) Error() string {
	return fmt.Sprintf("provider %q call failed: %v", e.Provider, e.Err)
}

func (e *ErrProvider) Unwrap() error { return e.Err }
