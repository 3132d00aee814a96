package genesys

import (
	"errors"
	"fmt"

	pkghttp "aibridge-srv/pkg/http"
)

// GenesysConfig holds configuration for the Genesys Cloud client.
type GenesysConfig struct {
	// Domain is the region domain (e.g. "mypurecloud.com", "mypurecloud.ie")
	// used for conversation lookups. Stored-download URLs carry their own.
	Domain     string
	HTTPClient pkghttp.IClient
}

// Credentials is an OAuth client-credentials pair, resolved per request.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// MediaAttachment describes one media item attached to a conversation message.
type MediaAttachment struct {
	URL       string `json:"url"`
	MediaType string `json:"mediaType"`
	Name      string `json:"name"`
}

// genesysImpl implements IGenesys.
type genesysImpl struct {
	domain     string
	httpClient pkghttp.IClient
}

// ErrNoCustomerMedia is returned when a conversation has no inbound message
// carrying a media attachment.
var ErrNoCustomerMedia = errors.New("genesys: no customer media found in conversation")

// APIError is returned when a Genesys Cloud endpoint answers with a
// non-success status. Body carries the raw response for diagnostics.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("genesys: %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}
