package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient answers prompts via the OpenAI chat completions API
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates an OpenAI chat adapter
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClient(apiKey)}
}

// Name returns the provider's display name
func (c *OpenAIClient) Name() string { return "ChatGPT" }

// Chat returns the assistant's reply to the prompt
func (c *OpenAIClient) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     openai.GPT3Dot5Turbo,
		MaxTokens: 500,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
