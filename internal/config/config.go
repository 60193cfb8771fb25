package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from the environment.
// Only the bot token is mandatory; features whose keys are missing
// degrade to a "not configured" reply.
type Config struct {
	BotToken           string
	OpenAIAPIKey       string
	GeminiAPIKey       string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	WeatherAPIKey      string
	AdminIDs           []int64
	DBPath             string
	DownloadDir        string
}

// Load reads the optional .env file and the process environment
func Load() (*Config, error) {
	// A missing .env is fine; deployments may set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:           os.Getenv("BOT_TOKEN"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		WeatherAPIKey:      os.Getenv("OPENWEATHER_API_KEY"),
		DBPath:             envOr("DB_PATH", "sky_bot.db"),
		DownloadDir:        envOr("DOWNLOAD_DIR", "downloads"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}

	admins, err := ParseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = admins

	return cfg, nil
}

// ParseAdminIDs parses the comma-separated ADMIN_IDS value
func ParseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
