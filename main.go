package main

import (
	"log"
	"time"

	"chequetrack/pkg/alert"
	"chequetrack/pkg/assistant"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := loadConfig()
	initDB(cfg)

	bot := assistant.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, 60*time.Second)
	if !bot.Available() {
		log.Println("GEMINI_API_KEY is not set; chat assistant disabled")
	}

	dispatcher := alert.NewDispatcher(buildAlertSender(cfg))

	r := gin.Default()
	setupRoutes(r, bot, dispatcher)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildAlertSender picks the alert channel from configuration: WhatsApp via
// Twilio when fully configured, otherwise a Discord channel, otherwise none.
func buildAlertSender(cfg Config) alert.Sender {
	if cfg.TwilioConfigured() {
		log.Printf("WhatsApp alerts enabled, recipient %s", cfg.TwilioRecipient)
		return alert.NewTwilioSender(cfg.TwilioBaseURL, cfg.TwilioAccountSID, cfg.TwilioAuthToken,
			cfg.TwilioWhatsAppFrom, cfg.TwilioRecipient, 30*time.Second)
	}
	if cfg.DiscordConfigured() {
		sender, err := alert.NewDiscordSender(cfg.DiscordBotToken, cfg.DiscordChannelID)
		if err != nil {
			log.Printf("discord alert setup failed, alerts disabled: %v", err)
			return nil
		}
		log.Printf("Discord alerts enabled, channel %s", cfg.DiscordChannelID)
		return sender
	}
	log.Println("no alert channel configured; cheque alerts disabled")
	return nil
}
