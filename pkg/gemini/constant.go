package gemini

import "time"

const (
	// BaseURL is the Generate Content API root.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// UploadBaseURL is the resumable Files API root.
	UploadBaseURL = "https://generativelanguage.googleapis.com/upload/v1beta/files"

	// DefaultModel is used when the caller does not pick one.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout is the default HTTP client timeout. Generation calls on
	// large multimodal inputs can be slow.
	DefaultTimeout = 120 * time.Second
)

// Resumable upload protocol headers.
const (
	headerUploadProtocol      = "X-Goog-Upload-Protocol"
	headerUploadCommand       = "X-Goog-Upload-Command"
	headerUploadOffset        = "X-Goog-Upload-Offset"
	headerUploadContentLength = "X-Goog-Upload-Header-Content-Length"
	headerUploadContentType   = "X-Goog-Upload-Header-Content-Type"
	headerUploadURL           = "X-Goog-Upload-URL"

	uploadProtocolResumable = "resumable"
	uploadCommandStart      = "start"
	uploadCommandFinalize   = "upload, finalize"
)
