package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GenerateContent issues exactly one generation call for the requested model
// and returns the parsed response with the raw provider body preserved.
func (g *geminiImpl) GenerateContent(ctx context.Context, model string, req GenerateContentRequest) (*GenerateContentResponse, error) {
	if model == "" {
		model = DefaultModel
	}
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)

	body, statusCode, err := g.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call Generate Content API: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, &APIError{Op: "generateContent", StatusCode: statusCode, Body: string(body)}
	}

	var resp GenerateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gemini: failed to unmarshal Generate Content response: %w", err)
	}
	resp.Raw = json.RawMessage(body)
	return &resp, nil
}
