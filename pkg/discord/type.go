package discord

import (
	"net/http"
	"time"

	"aibridge-srv/pkg/log"
)

// Config contains configuration for the Discord notifier.
type Config struct {
	Timeout         time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default notifier configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		DefaultUsername: "aibridge-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to a Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

const (
	colorError   = 0xE74C3C
	colorWarning = 0xF1C40F
)
