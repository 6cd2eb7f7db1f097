package gateway

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAITransport serves the openai provider and every OpenAI-compatible
// host in the registry (Mistral, DeepSeek, Groq) via a BaseURL override.
type openAITransport struct{}

func (t *openAITransport) complete(ctx context.Context, cfg ProviderConfig, apiKey string, req Request) (string, error) {
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientCfg)

	chatReq := openai.ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	}

	if req.Format == FormatJSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
