package genesys

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const directionInbound = "inbound"

type conversationMessage struct {
	ID        string            `json:"id"`
	Direction string            `json:"direction"`
	Media     []MediaAttachment `json:"media"`
}

type conversationMessagesResponse struct {
	Entities []conversationMessage `json:"entities"`
}

// LatestCustomerMedia lists the conversation's messages and returns the media
// attachment of the most recent inbound (customer) message carrying one.
// Returns ErrNoCustomerMedia when no such message exists.
func (g *genesysImpl) LatestCustomerMedia(ctx context.Context, creds Credentials, conversationID string) (*MediaAttachment, error) {
	token, err := g.GetToken(ctx, g.domain, creds)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://api.%s%s/%s/messages", g.domain, PathConversationMessages, conversationID)
	body, statusCode, err := g.httpClient.Get(ctx, url, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, fmt.Errorf("genesys: conversation lookup failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, &APIError{Op: "conversation lookup", StatusCode: statusCode, Body: string(body)}
	}

	var resp conversationMessagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("genesys: failed to unmarshal conversation messages: %w", err)
	}

	// entities are ordered oldest first; walk backwards for the latest match
	for i := len(resp.Entities) - 1; i >= 0; i-- {
		msg := resp.Entities[i]
		if msg.Direction != directionInbound || len(msg.Media) == 0 {
			continue
		}
		media := msg.Media[0]
		if media.URL == "" {
			continue
		}
		return &media, nil
	}
	return nil, ErrNoCustomerMedia
}
