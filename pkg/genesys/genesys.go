package genesys

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// GetToken exchanges client credentials for a bearer token against the given
// region's token endpoint.
func (g *genesysImpl) GetToken(ctx context.Context, domain string, creds Credentials) (string, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return "", fmt.Errorf("genesys: client credentials are required")
	}
	if domain == "" {
		domain = g.domain
	}
	url := fmt.Sprintf("https://login.%s%s", domain, PathOAuthToken)

	basic := base64.StdEncoding.EncodeToString([]byte(creds.ClientID + ":" + creds.ClientSecret))
	body, statusCode, err := g.httpClient.PostForm(ctx, url,
		map[string]string{"grant_type": "client_credentials"},
		map[string]string{"Authorization": "Basic " + basic},
	)
	if err != nil {
		return "", fmt.Errorf("genesys: token exchange failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", &APIError{Op: "token exchange", StatusCode: statusCode, Body: string(body)}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("genesys: failed to unmarshal token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", &APIError{Op: "token exchange", StatusCode: statusCode, Body: "missing access_token; response: " + string(body)}
	}
	return token.AccessToken, nil
}

// DownloadStoredFile fetches the bytes behind a stored-download URL,
// performing the token exchange for the URL's region first.
func (g *genesysImpl) DownloadStoredFile(ctx context.Context, creds Credentials, rawURL string) ([]byte, error) {
	domain, _, ok := parseStoredDownloadURL(rawURL)
	if !ok {
		return nil, fmt.Errorf("genesys: %q is not a stored-download URL", rawURL)
	}

	token, err := g.GetToken(ctx, domain, creds)
	if err != nil {
		return nil, err
	}

	body, statusCode, err := g.httpClient.Get(ctx, rawURL, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, fmt.Errorf("genesys: stored-file download failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, &APIError{Op: "stored-file download", StatusCode: statusCode, Body: string(body)}
	}
	return body, nil
}
