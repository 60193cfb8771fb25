package handlers

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sky-bot/internal/interfaces/telegram/handlers/shared"
)

// ButtonAction is the closed set of inline keyboard actions
type ButtonAction string

const (
	ButtonAIChat   ButtonAction = "ai_chat"
	ButtonYouTube  ButtonAction = "youtube"
	ButtonWeather  ButtonAction = "weather"
	ButtonWhatsApp ButtonAction = "whatsapp"
	ButtonGames    ButtonAction = "games"
	ButtonHelp     ButtonAction = "help"
)

// handleCallbackQuery processes inline keyboard presses by editing the menu
// message into the matching hint
func (h *BotHandler) handleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if err := h.bot.AnswerCallbackQuery(callback.ID, ""); err != nil {
		log.Printf("Failed to answer callback query: %v", err)
	}

	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	var text string
	switch ButtonAction(callback.Data) {
	case ButtonAIChat:
		text = "🤖 AI Chat activated! Just send me any message."
	case ButtonYouTube:
		text = "📥 Use /youtube <url> for video or /ytaudio <url> for audio."
	case ButtonWeather:
		text = "🌤 Use /weather <city> to get weather info."
	case ButtonWhatsApp:
		text = "📱 Use /whatsapp <number> <message> to send WhatsApp."
	case ButtonGames:
		text = "🎮 Use /game to start the number guessing game!"
	case ButtonHelp:
		text = shared.HelpText()
	default:
		log.Printf("Unknown callback data: %s", callback.Data)
		return
	}

	if err := h.bot.EditMessage(chatID, messageID, text); err != nil {
		log.Printf("Failed to edit menu message: %v", err)
	}
}
