package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sky-bot/internal/application/usecases"
	"sky-bot/internal/config"
	"sky-bot/internal/infrastructure/ai"
	"sky-bot/internal/infrastructure/media"
	"sky-bot/internal/infrastructure/memory"
	"sky-bot/internal/infrastructure/messaging"
	"sky-bot/internal/infrastructure/persistence"
	"sky-bot/internal/infrastructure/telegram"
	"sky-bot/internal/infrastructure/weather"
	routing "sky-bot/internal/interfaces/telegram"
	"sky-bot/internal/interfaces/telegram/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := persistence.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	userRepo := persistence.NewUserRepository(db)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// AI providers; either may be absent
	var openAIChat, geminiChat usecases.Chatter
	if cfg.OpenAIAPIKey != "" {
		openAIChat = ai.NewOpenAIClient(cfg.OpenAIAPIKey)
	}
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Warning: failed to create Gemini client: %v", err)
		} else {
			defer gemini.Close()
			geminiChat = gemini
		}
	}

	var weatherClient *weather.Client
	if cfg.WeatherAPIKey != "" {
		weatherClient = weather.NewClient(cfg.WeatherAPIKey)
	}

	var whatsApp *messaging.WhatsAppSender
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		whatsApp = messaging.NewWhatsAppSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom)
	}

	downloader := media.NewDownloader(cfg.DownloadDir)

	// Initialize use cases
	sessions := memory.NewSessionStore()
	userUseCase := usecases.NewUserUseCase(userRepo)
	gameUseCase := usecases.NewGameUseCase(sessions)
	chatUseCase := usecases.NewChatUseCase(openAIChat, geminiChat)

	// Initialize Telegram bot
	bot, err := telegram.NewBot(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := bot.SetupCommands(); err != nil {
		log.Printf("Warning: Failed to setup bot commands: %v", err)
		log.Printf("The bot will still work, but commands won't show in Telegram's menu")
	}

	// Initialize routing
	dispatcher := routing.NewDispatcher(cfg.AdminIDs, gameUseCase)
	handler := handlers.NewBotHandler(bot, dispatcher, userUseCase, gameUseCase, chatUseCase,
		weatherClient, whatsApp, downloader)

	log.Printf("Starting SKY BOT...")
	log.Printf("Admin IDs: %v", cfg.AdminIDs)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		log.Println("Shutting down...")
		cancel()
	}()

	if err := handler.Start(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
