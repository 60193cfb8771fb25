package handlers

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sky-bot/internal/application/usecases"
	"sky-bot/internal/domain/user"
	"sky-bot/internal/infrastructure/media"
	"sky-bot/internal/infrastructure/messaging"
	"sky-bot/internal/infrastructure/telegram"
	"sky-bot/internal/infrastructure/weather"
	routing "sky-bot/internal/interfaces/telegram"
)

// BotHandler handles Telegram bot interactions
type BotHandler struct {
	bot         *telegram.Bot
	dispatcher  *routing.Dispatcher
	userUseCase *usecases.UserUseCase
	gameUseCase *usecases.GameUseCase
	chatUseCase *usecases.ChatUseCase
	weather     *weather.Client
	whatsApp    *messaging.WhatsAppSender
	downloader  *media.Downloader
}

// NewBotHandler creates a bot handler and registers its routes on the
// dispatcher. The weather and whatsApp adapters may be nil when their
// credentials are not configured.
func NewBotHandler(
	bot *telegram.Bot,
	dispatcher *routing.Dispatcher,
	userUseCase *usecases.UserUseCase,
	gameUseCase *usecases.GameUseCase,
	chatUseCase *usecases.ChatUseCase,
	weatherClient *weather.Client,
	whatsApp *messaging.WhatsAppSender,
	downloader *media.Downloader,
) *BotHandler {
	h := &BotHandler{
		bot:         bot,
		dispatcher:  dispatcher,
		userUseCase: userUseCase,
		gameUseCase: gameUseCase,
		chatUseCase: chatUseCase,
		weather:     weatherClient,
		whatsApp:    whatsApp,
		downloader:  downloader,
	}

	dispatcher.Register("start", h.handleStart)
	dispatcher.Register("help", h.handleHelp)
	dispatcher.Register("chatgpt", h.handleChatGPT)
	dispatcher.Register("gemini", h.handleGemini)
	dispatcher.Register("youtube", h.handleYouTube)
	dispatcher.Register("ytaudio", h.handleYTAudio)
	dispatcher.Register("whatsapp", h.handleWhatsApp)
	dispatcher.Register("weather", h.handleWeather)
	dispatcher.Register("game", h.handleGame)
	dispatcher.Register("time", h.handleTime)
	dispatcher.RegisterAdmin("broadcast", h.handleBroadcast)
	dispatcher.RegisterAdmin("stats", h.handleStats)
	dispatcher.OnGuess(h.handleGuess)
	dispatcher.OnChat(h.handleFreeText)
	dispatcher.OnUnknown(h.handleUnknown)
	dispatcher.OnUnauthorized(h.handleUnauthorized)

	return h
}

// Start starts the bot and handles updates
func (h *BotHandler) Start(ctx context.Context) error {
	updates := h.bot.GetUpdatesChan()

	log.Println("Bot started. Waiting for updates...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot stopping...")
			h.bot.StopReceivingUpdates()
			return nil
		case update := <-updates:
			go h.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate processes one incoming update. A failing update is logged
// and never takes the process down.
func (h *BotHandler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while handling update %d: %v", update.UpdateID, r)
		}
	}()

	h.registerSender(ctx, update)

	if update.CallbackQuery != nil {
		h.handleCallbackQuery(ctx, update.CallbackQuery)
		return
	}

	if err := h.dispatcher.Dispatch(ctx, update); err != nil {
		log.Printf("Failed to handle update %d: %v", update.UpdateID, err)
	}
}

// registerSender upserts the sender into the user registry so /broadcast
// can reach them later. Registry failures never block handling.
func (h *BotHandler) registerSender(ctx context.Context, update tgbotapi.Update) {
	from := update.SentFrom()
	if from == nil {
		return
	}

	_, err := h.userUseCase.GetOrCreateUser(ctx,
		user.TelegramID(from.ID), from.UserName, from.FirstName, from.LastName, from.LanguageCode)
	if err != nil {
		log.Printf("Failed to register user %d: %v", from.ID, err)
	}
}
