package gemini

import (
	"context"
	"fmt"

	pkghttp "aibridge-srv/pkg/http"
)

// IGemini defines the interface for the Gemini API: file staging and content
// generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	UploadFile(ctx context.Context, input UploadFileInput) (*UploadedFile, error)
	GenerateContent(ctx context.Context, model string, req GenerateContentRequest) (*GenerateContentResponse, error)
}

// New creates a new Gemini client. APIKey must be set.
func New(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.UploadBaseURL == "" {
		cfg.UploadBaseURL = UploadBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		})
	}
	return &geminiImpl{
		apiKey:        cfg.APIKey,
		baseURL:       cfg.BaseURL,
		uploadBaseURL: cfg.UploadBaseURL,
		httpClient:    cfg.HTTPClient,
	}, nil
}
