package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sky-bot/internal/infrastructure/media"
	"sky-bot/internal/infrastructure/weather"
	"sky-bot/internal/interfaces/telegram/handlers/shared"
)

// handleStart processes the /start command
func (h *BotHandler) handleStart(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	text := fmt.Sprintf(
		"👋 Hello %s! I'm SKY BOT 🤖\nChoose an option below:",
		msg.From.FirstName)

	return h.bot.SendMessageWithKeyboard(msg.Chat.ID, text, shared.CreateMainMenuKeyboard())
}

// handleHelp processes the /help command
func (h *BotHandler) handleHelp(ctx context.Context, update tgbotapi.Update, args []string) error {
	return h.bot.SendMessage(update.Message.Chat.ID, shared.HelpText())
}

// handleChatGPT processes /chatgpt <question>
func (h *BotHandler) handleChatGPT(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	if len(args) == 0 {
		return h.bot.SendMessage(msg.Chat.ID, "Usage: /chatgpt <your question>")
	}

	h.notifyThinking(msg.Chat.ID)
	reply := h.chatUseCase.AskOpenAI(ctx, strings.Join(args, " "))
	return h.reply(msg.Chat.ID, reply)
}

// handleGemini processes /gemini <question>
func (h *BotHandler) handleGemini(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	if len(args) == 0 {
		return h.bot.SendMessage(msg.Chat.ID, "Usage: /gemini <your question>")
	}

	h.notifyThinking(msg.Chat.ID)
	reply := h.chatUseCase.AskGemini(ctx, strings.Join(args, " "))
	return h.reply(msg.Chat.ID, reply)
}

// handleFreeText answers a non-command message with the preferred AI provider
func (h *BotHandler) handleFreeText(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message

	h.notifyThinking(msg.Chat.ID)
	reply := h.chatUseCase.Reply(ctx, msg.Text)
	return h.reply(msg.Chat.ID, reply)
}

// handleGame processes the /game command
func (h *BotHandler) handleGame(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	return h.bot.SendMessage(msg.Chat.ID, h.gameUseCase.Start(msg.From.ID))
}

// handleGuess treats a free-text message as a game guess
func (h *BotHandler) handleGuess(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	return h.bot.SendMessage(msg.Chat.ID, h.gameUseCase.Guess(msg.From.ID, msg.Text))
}

// handleYouTube processes /youtube <url>
func (h *BotHandler) handleYouTube(ctx context.Context, update tgbotapi.Update, args []string) error {
	return h.download(ctx, update, args, media.ModeVideo)
}

// handleYTAudio processes /ytaudio <url>
func (h *BotHandler) handleYTAudio(ctx context.Context, update tgbotapi.Update, args []string) error {
	return h.download(ctx, update, args, media.ModeAudio)
}

func (h *BotHandler) download(ctx context.Context, update tgbotapi.Update, args []string, mode media.Mode) error {
	msg := update.Message
	if len(args) == 0 {
		usage := "Usage: /youtube <YouTube URL>"
		if mode == media.ModeAudio {
			usage = "Usage: /ytaudio <YouTube URL>"
		}
		return h.bot.SendMessage(msg.Chat.ID, usage)
	}

	notice := "📥 Downloading video..."
	if mode == media.ModeAudio {
		notice = "🎵 Downloading audio..."
	}
	h.notify(msg.Chat.ID, notice)

	path, name, err := h.downloader.Download(ctx, args[0], mode)
	if err != nil {
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("❌ YouTube Error: %v", err))
	}
	defer os.Remove(path)

	caption := fmt.Sprintf("✅ Here's your %s: %s", mode, name)
	if mode == media.ModeAudio {
		return h.bot.SendAudio(msg.Chat.ID, path, caption)
	}
	return h.bot.SendVideo(msg.Chat.ID, path, caption)
}

// handleWhatsApp processes /whatsapp <number> <message>
func (h *BotHandler) handleWhatsApp(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	if len(args) < 2 {
		return h.bot.SendMessage(msg.Chat.ID, "Usage: /whatsapp <phone_number> <message>")
	}

	if h.whatsApp == nil {
		return h.bot.SendMessage(msg.Chat.ID, "❌ WhatsApp not configured. Add TWILIO credentials.")
	}

	number := args[0]
	sid, err := h.whatsApp.Send(number, strings.Join(args[1:], " "))
	if err != nil {
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("❌ WhatsApp Error: %v", err))
	}

	return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("✅ WhatsApp sent to %s (SID: %s)", number, sid))
}

// handleWeather processes /weather <city>
func (h *BotHandler) handleWeather(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	if len(args) == 0 {
		return h.bot.SendMessage(msg.Chat.ID, "Usage: /weather <city>")
	}

	if h.weather == nil {
		return h.bot.SendMessage(msg.Chat.ID, "❌ Weather not configured. Add OPENWEATHER_API_KEY.")
	}

	city := strings.Join(args, " ")
	summary, err := h.weather.Current(ctx, city)
	if err != nil {
		var notFound *weather.ErrCityNotFound
		if errors.As(err, &notFound) {
			return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("❌ City not found: %s", city))
		}
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("❌ Weather Error: %v", err))
	}

	return h.bot.SendMessage(msg.Chat.ID, summary)
}

// handleTime processes the /time command
func (h *BotHandler) handleTime(ctx context.Context, update tgbotapi.Update, args []string) error {
	now := time.Now().Format("Monday, 02 Jan 2006 15:04:05 MST")
	return h.bot.SendMessage(update.Message.Chat.ID, "🕐 "+now)
}

// handleBroadcast processes the admin-only /broadcast <message> command
func (h *BotHandler) handleBroadcast(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message
	if len(args) == 0 {
		return h.bot.SendMessage(msg.Chat.ID, "Usage: /broadcast <message>")
	}

	users, err := h.userUseCase.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("broadcast: %w", err)
	}

	text := "📢 " + strings.Join(args, " ")
	sent := 0
	for _, u := range users {
		if err := h.bot.SendMessage(int64(u.TelegramID()), text); err != nil {
			log.Printf("Broadcast to %d failed: %v", u.TelegramID(), err)
			continue
		}
		sent++
	}

	return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("📢 Broadcast sent to %d users", sent))
}

// handleStats processes the admin-only /stats command
func (h *BotHandler) handleStats(ctx context.Context, update tgbotapi.Update, args []string) error {
	msg := update.Message

	count, err := h.userUseCase.Count(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	text := fmt.Sprintf(
		"📊 Bot Statistics\n"+
			"• Registered users: %d\n"+
			"• Active games: %d",
		count, h.gameUseCase.ActiveGames())
	return h.bot.SendMessage(msg.Chat.ID, text)
}

// handleUnknown replies to unrecognized commands
func (h *BotHandler) handleUnknown(ctx context.Context, update tgbotapi.Update, args []string) error {
	return h.bot.SendMessage(update.Message.Chat.ID, "Unknown command. Use /help to see what I can do.")
}

// handleUnauthorized replies to admin commands from non-admins
func (h *BotHandler) handleUnauthorized(ctx context.Context, update tgbotapi.Update, args []string) error {
	return h.bot.SendMessage(update.Message.Chat.ID, "❌ Admin only command!")
}
