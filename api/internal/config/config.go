package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	TelegramBotToken string
	WebhookURL       string

	GeminiAPIKey string
	GeminiModel  string

	// Whisper transcription for voice notes. Optional: without it the bot
	// still works with typed input.
	OpenAIAPIKey string

	InvoiceAPIURL string
	InvoiceAPIKey string

	UploadEndpoint string

	TwilioSID        string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		TelegramBotToken: mustEnv("TELEGRAM_BOT_TOKEN"),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		InvoiceAPIURL: getEnv("INVOICE_GEN_API_URL", "https://invoice-generator.com"),
		InvoiceAPIKey: mustEnv("INVOICE_GEN_API_KEY"),

		UploadEndpoint: getEnv("UPLOAD_ENDPOINT", "https://tmpfiles.org/api/v1/upload"),

		TwilioSID:        mustEnv("TWILIO_SID"),
		TwilioAuthToken:  mustEnv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: mustEnv("TWILIO_PHONE_NUMBER"),
	}
}
