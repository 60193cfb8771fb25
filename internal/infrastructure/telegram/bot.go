package telegram

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram bot API
type Bot struct {
	api *tgbotapi.BotAPI
}

// NewBot creates a new Telegram bot
func NewBot(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = false
	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{api: api}, nil
}

// GetUpdatesChan returns a channel for receiving updates
func (b *Bot) GetUpdatesChan() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	return b.api.GetUpdatesChan(u)
}

// StopReceivingUpdates stops the update polling loop
func (b *Bot) StopReceivingUpdates() {
	b.api.StopReceivingUpdates()
}

// SendMessage sends a text message
func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

// SendMessageWithKeyboard sends a message with inline keyboard
func (b *Bot) SendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := b.api.Send(msg)
	return err
}

// EditMessage edits an existing message
func (b *Bot) EditMessage(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	_, err := b.api.Send(edit)
	return err
}

// SendVideo uploads a video file with a caption
func (b *Bot) SendVideo(chatID int64, filePath, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(filePath))
	video.Caption = caption
	_, err := b.api.Send(video)
	return err
}

// SendAudio uploads an audio file with a caption
func (b *Bot) SendAudio(chatID int64, filePath, caption string) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(filePath))
	audio.Caption = caption
	_, err := b.api.Send(audio)
	return err
}

// AnswerCallbackQuery answers a callback query
func (b *Bot) AnswerCallbackQuery(callbackID string, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	_, err := b.api.Request(callback)
	return err
}

// SetupCommands configures the bot commands with BotFather
func (b *Bot) SetupCommands() error {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "👋 Welcome message and main menu"},
		{Command: "help", Description: "📚 List all commands"},
		{Command: "chatgpt", Description: "🤖 Ask ChatGPT"},
		{Command: "gemini", Description: "✨ Ask Google Gemini"},
		{Command: "youtube", Description: "📥 Download a YouTube video"},
		{Command: "ytaudio", Description: "🎵 Download YouTube audio"},
		{Command: "whatsapp", Description: "📱 Send a WhatsApp message"},
		{Command: "weather", Description: "🌤 Get weather for a city"},
		{Command: "game", Description: "🎮 Start the number guessing game"},
		{Command: "time", Description: "🕐 Current server time"},
	}

	setCommands := tgbotapi.NewSetMyCommands(commands...)
	if _, err := b.api.Request(setCommands); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	log.Printf("Bot commands configured successfully")
	return nil
}
