package gateway

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicTransport serves the claude provider. Anthropic has no JSON
// response-format switch; prompts ask for JSON and the coercion layer
// strips code fences.
type anthropicTransport struct{}

func (t *anthropicTransport) complete(ctx context.Context, cfg ProviderConfig, apiKey string, req Request) (string, error) {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(cfg.Model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	message, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", nil
}
