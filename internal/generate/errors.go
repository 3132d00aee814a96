package generate

import "errors"

// Domain errors
var (
	// ErrMissingGenesysCredentials - a stored-download URL or conversation
	// lookup needs Genesys Cloud credentials and none were resolved
	ErrMissingGenesysCredentials = errors.New("generate: Genesys Cloud credentials are required")

	// ErrNoCustomerMedia - conversation has no inbound message with media
	ErrNoCustomerMedia = errors.New("generate: no customer media found")

	// ErrFileDownloadFailed - file fetch or OAuth exchange failed
	ErrFileDownloadFailed = errors.New("generate: file download failed")

	// ErrFileUploadFailed - Gemini rejected the file staging
	ErrFileUploadFailed = errors.New("generate: file upload failed")

	// ErrGenerationFailed - generation call failed
	ErrGenerationFailed = errors.New("generate: generation call failed")
)
