package notify

import (
	"context"
	"fmt"
	"strings"

	"zumpfinanc/internal/config"

	"github.com/bwmarrin/discordgo"
)

// maxContent is the Discord message length limit.
const maxContent = 2000

// Discord posts messages through a channel webhook.
type Discord struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

func NewDiscord(webhookID, token string) (*Discord, error) {
	if webhookID == "" || token == "" {
		return nil, fmt.Errorf("discord webhook id and token are required")
	}
	// webhook execution authenticates with the webhook token, not a bot token
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return &Discord{
		session:   session,
		webhookID: webhookID,
		token:     token,
	}, nil
}

func (d *Discord) Notify(ctx context.Context, msg string) error {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil
	}
	msg = clip(msg, maxContent)
	_, err := d.session.WebhookExecute(d.webhookID, d.token, false,
		&discordgo.WebhookParams{Content: msg}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	return nil
}

// clip shortens s to at most n characters without splitting one.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// FromConfig returns a Discord notifier, or nil when no webhook is configured.
func FromConfig(cfg config.NotifyConfig) (*Discord, error) {
	if cfg.DiscordWebhookID == "" && cfg.DiscordWebhookToken == "" {
		return nil, nil
	}
	return NewDiscord(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
}
