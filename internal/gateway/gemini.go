package gateway

import (
	"context"

	"google.golang.org/genai"
)

// geminiTransport serves the google-geminis provider.
type geminiTransport struct{}

func (t *geminiTransport) complete(ctx context.Context, cfg ProviderConfig, apiKey string, req Request) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		},
	}
	if req.Format == FormatJSON {
		config.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}},
	}

	result, err := client.Models.GenerateContent(ctx, cfg.Model, contents, config)
	if err != nil {
		return "", err
	}

	return result.Text(), nil
}
