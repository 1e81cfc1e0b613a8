package alert

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordSender posts alerts to a single Discord channel. Plain REST sends
// need no gateway connection, so the session is never opened.
type DiscordSender struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordSender(botToken, channelID string) (*DiscordSender, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return &DiscordSender{session: session, channelID: channelID}, nil
}

func (s *DiscordSender) Send(body string) error {
	if _, err := s.session.ChannelMessageSend(s.channelID, body); err != nil {
		return fmt.Errorf("discord send failed: %w", err)
	}
	return nil
}
