package genesys

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for Genesys Cloud calls.
	DefaultTimeout = 30 * time.Second

	// DefaultDomain is the default Genesys Cloud region domain, used for
	// conversation lookups when no stored-download URL pins a region.
	DefaultDomain = "mypurecloud.com"
)

// API path segments (full URLs built in genesys.go / conversation.go).
const (
	PathOAuthToken           = "/oauth/token"
	PathConversationMessages = "/api/v2/conversations/messages"
)
