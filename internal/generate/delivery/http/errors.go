package http

import (
	"errors"

	"aibridge-srv/internal/generate"
	pkgErrors "aibridge-srv/pkg/errors"
)

var (
	errInvalidPayload      = pkgErrors.NewHTTPError(400, "Invalid JSON payload")
	errUnsupportedProvider = pkgErrors.NewHTTPError(400, "Unsupported provider")
	errUnsupportedModel    = pkgErrors.NewHTTPError(400, "Unsupported model")
	errMaxTokensRange      = pkgErrors.NewHTTPError(400, "max_tokens must be between 4 and 8192")
	errMissingGenesysCreds = pkgErrors.NewHTTPError(400, "Genesys Cloud credentials are required")
	errNoCustomerMedia     = pkgErrors.NewHTTPError(404, "No customer media found in conversation")
	errDownloadFailed      = pkgErrors.NewHTTPError(502, "File download failed")
	errUploadFailed        = pkgErrors.NewHTTPError(502, "File upload failed")
	errGenerationFailed    = pkgErrors.NewHTTPError(502, "Generation call failed")
)

func newValidationError(message string) *pkgErrors.HTTPError {
	return pkgErrors.NewHTTPError(400, message)
}

// mapError translates domain errors to business statuses. The second return
// is the diagnostic detail; download/upload/generation failures carry the
// wrapped error text through to the caller.
func (h *handler) mapError(err error) (error, string) {
	switch {
	case errors.Is(err, generate.ErrMissingGenesysCredentials):
		return errMissingGenesysCreds, ""
	case errors.Is(err, generate.ErrNoCustomerMedia):
		return errNoCustomerMedia, ""
	case errors.Is(err, generate.ErrFileDownloadFailed):
		return errDownloadFailed, err.Error()
	case errors.Is(err, generate.ErrFileUploadFailed):
		return errUploadFailed, err.Error()
	case errors.Is(err, generate.ErrGenerationFailed):
		return errGenerationFailed, err.Error()
	default:
		return err, err.Error()
	}
}
