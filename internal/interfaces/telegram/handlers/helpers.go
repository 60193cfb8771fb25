package handlers

import (
	"log"
)

// maxReplyLength caps AI replies before sending, the same cut the original
// bot applied under Telegram's 4096-character message limit
const maxReplyLength = 4000

// reply sends text to the chat, truncated to the reply limit
func (h *BotHandler) reply(chatID int64, text string) error {
	return h.bot.SendMessage(chatID, truncate(text, maxReplyLength))
}

// notify sends a transient status line; failures are logged, not surfaced
func (h *BotHandler) notify(chatID int64, text string) {
	if err := h.bot.SendMessage(chatID, text); err != nil {
		log.Printf("Failed to send notice to %d: %v", chatID, err)
	}
}

// notifyThinking announces a pending AI call
func (h *BotHandler) notifyThinking(chatID int64) {
	h.notify(chatID, "🤖 Thinking...")
}

// truncate cuts text to at most max runes
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
