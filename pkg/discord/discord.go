package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage posts a plain content message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendError posts an error embed. The underlying error text is attached as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "error", Value: err.Error()})
	}
	return d.send(ctx, WebhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

// SendWarning posts a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       colorWarning,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
