package shared

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CreateMainMenuKeyboard creates the standard main menu keyboard
func CreateMainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤖 AI Chat", "ai_chat"),
			tgbotapi.NewInlineKeyboardButtonData("📥 YouTube DL", "youtube"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌤 Weather", "weather"),
			tgbotapi.NewInlineKeyboardButtonData("📱 WhatsApp", "whatsapp"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎮 Games", "games"),
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", "help"),
		),
	)
}

// HelpText returns the standard help text
func HelpText() string {
	return `📚 SKY BOT COMMANDS

🤖 AI Chat
• /chatgpt <text> - ChatGPT response
• /gemini <text> - Google Gemini response
• Just send any message for AI reply

📥 Downloader
• /youtube <url> - Download YouTube video
• /ytaudio <url> - Download YouTube audio

📱 WhatsApp Tools
• /whatsapp <number> <message> - Send WhatsApp message

🌤 Weather
• /weather <city> - Get weather info

🎮 Games
• /game - Start number guessing game
• Send numbers to guess

📊 Utilities
• /time - Current time

⚙️ Admin (Admin only)
• /broadcast <message> - Broadcast to all users
• /stats - Bot statistics`
}
