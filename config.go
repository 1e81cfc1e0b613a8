package main

import "os"

// Config carries all environment-sourced settings, read once at startup.
type Config struct {
	Port   string
	DBDSN  string // Postgres DSN; when empty the sqlite fallback is used
	DBPath string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	TwilioRecipient    string
	TwilioBaseURL      string

	DiscordBotToken  string
	DiscordChannelID string
}

func loadConfig() Config {
	return Config{
		Port:   envOrDefault("PORT", "5000"),
		DBDSN:  os.Getenv("DB_DSN"),
		DBPath: envOrDefault("DB_PATH", "cheques.db"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: envOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		TwilioRecipient:    os.Getenv("TWILIO_WHATSAPP_RECIPIENT"),
		TwilioBaseURL:      envOrDefault("TWILIO_BASE_URL", "https://api.twilio.com"),

		DiscordBotToken:  os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
	}
}

// TwilioConfigured reports whether every setting needed for WhatsApp alerts is present.
func (c Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioWhatsAppFrom != "" && c.TwilioRecipient != ""
}

func (c Config) DiscordConfigured() bool {
	return c.DiscordBotToken != "" && c.DiscordChannelID != ""
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
