package usecases

import (
	"context"
	"fmt"
)

// Chatter produces an assistant reply for a prompt
type Chatter interface {
	// Name is the provider's display name, used in error messages
	Name() string

	// Chat returns the assistant's reply to the prompt
	Chat(ctx context.Context, prompt string) (string, error)
}

// ChatUseCase selects between the configured AI providers. Gemini is
// preferred for free-text messages when both providers are configured.
type ChatUseCase struct {
	openAI Chatter
	gemini Chatter
}

// NewChatUseCase creates a chat use case; either provider may be nil
// when its API key is not configured.
func NewChatUseCase(openAI, gemini Chatter) *ChatUseCase {
	return &ChatUseCase{openAI: openAI, gemini: gemini}
}

// Reply answers a free-text message with the preferred provider
func (uc *ChatUseCase) Reply(ctx context.Context, prompt string) string {
	switch {
	case uc.gemini != nil:
		return uc.ask(ctx, uc.gemini, prompt)
	case uc.openAI != nil:
		return uc.ask(ctx, uc.openAI, prompt)
	default:
		return "🤖 No AI provider configured. Set GEMINI_API_KEY or OPENAI_API_KEY."
	}
}

// AskOpenAI answers with OpenAI explicitly (the /chatgpt command)
func (uc *ChatUseCase) AskOpenAI(ctx context.Context, prompt string) string {
	if uc.openAI == nil {
		return "🤖 ChatGPT not configured. Set OPENAI_API_KEY."
	}
	return uc.ask(ctx, uc.openAI, prompt)
}

// AskGemini answers with Gemini explicitly (the /gemini command)
func (uc *ChatUseCase) AskGemini(ctx context.Context, prompt string) string {
	if uc.gemini == nil {
		return "🤖 Gemini not configured. Set GEMINI_API_KEY."
	}
	return uc.ask(ctx, uc.gemini, prompt)
}

func (uc *ChatUseCase) ask(ctx context.Context, c Chatter, prompt string) string {
	reply, err := c.Chat(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("🤖 %s Error: %v", c.Name(), err)
	}
	return reply
}
