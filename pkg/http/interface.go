package http

import (
	"context"
	"net/http"
)

// IClient defines the interface for HTTP client with timeout and optional retry.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
	PostForm(ctx context.Context, url string, form map[string]string, headers map[string]string) ([]byte, int, error)
	// PostRaw sends an arbitrary byte payload and returns the response headers
	// alongside the body, for protocols that carry results in headers.
	PostRaw(ctx context.Context, url string, contentType string, payload []byte, headers map[string]string) ([]byte, int, http.Header, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
