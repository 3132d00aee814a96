package genesys

import (
	"context"

	pkghttp "aibridge-srv/pkg/http"
)

// IGenesys defines the interface for the Genesys Cloud API surface this
// service needs: token exchange, authenticated stored-file download, and
// conversation media lookup. Credentials are passed per call; nothing is
// cached between requests.
// Implementations are safe for concurrent use.
type IGenesys interface {
	GetToken(ctx context.Context, domain string, creds Credentials) (string, error)
	DownloadStoredFile(ctx context.Context, creds Credentials, rawURL string) ([]byte, error)
	LatestCustomerMedia(ctx context.Context, creds Credentials, conversationID string) (*MediaAttachment, error)
}

// New creates a new Genesys Cloud client. Returns the interface.
func New(cfg GenesysConfig) IGenesys {
	if cfg.Domain == "" {
		cfg.Domain = DefaultDomain
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: DefaultTimeout,
			Retries: 0,
		})
	}
	return &genesysImpl{
		domain:     cfg.Domain,
		httpClient: cfg.HTTPClient,
	}
}
