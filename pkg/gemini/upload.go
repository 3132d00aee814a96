package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

type uploadStartRequest struct {
	File uploadStartFile `json:"file"`
}

type uploadStartFile struct {
	DisplayName string `json:"display_name"`
}

type uploadFinalizeResponse struct {
	File *UploadedFile `json:"file"`
}

// UploadFile stages one file's bytes with the Files API using the two-step
// resumable handshake: a start call declaring length, MIME type and display
// name, then a single upload+finalize call against the session URL it returns.
func (g *geminiImpl) UploadFile(ctx context.Context, input UploadFileInput) (*UploadedFile, error) {
	startURL := fmt.Sprintf("%s?key=%s", g.uploadBaseURL, g.apiKey)

	startBody, err := json.Marshal(uploadStartRequest{File: uploadStartFile{DisplayName: input.DisplayName}})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal upload start request: %w", err)
	}

	respBody, statusCode, respHeaders, err := g.httpClient.PostRaw(ctx, startURL, "application/json", startBody, map[string]string{
		headerUploadProtocol:      uploadProtocolResumable,
		headerUploadCommand:       uploadCommandStart,
		headerUploadContentLength: strconv.Itoa(len(input.Data)),
		headerUploadContentType:   input.MimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: upload start call failed: %w", err)
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &APIError{Op: "upload start", StatusCode: statusCode, Body: string(respBody)}
	}

	sessionURL := respHeaders.Get(headerUploadURL)
	if sessionURL == "" {
		return nil, &APIError{Op: "upload start", StatusCode: statusCode, Body: "missing upload session URL; response: " + string(respBody)}
	}

	finalizeBody, statusCode, _, err := g.httpClient.PostRaw(ctx, sessionURL, input.MimeType, input.Data, map[string]string{
		headerUploadOffset:  "0",
		headerUploadCommand: uploadCommandFinalize,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: upload finalize call failed: %w", err)
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &APIError{Op: "upload finalize", StatusCode: statusCode, Body: string(finalizeBody)}
	}

	var finalized uploadFinalizeResponse
	if err := json.Unmarshal(finalizeBody, &finalized); err != nil {
		return nil, fmt.Errorf("gemini: failed to unmarshal upload finalize response: %w", err)
	}
	if finalized.File == nil || finalized.File.URI == "" {
		return nil, &APIError{Op: "upload finalize", StatusCode: statusCode, Body: "missing file reference; response: " + string(finalizeBody)}
	}

	if finalized.File.MimeType == "" {
		finalized.File.MimeType = input.MimeType
	}
	return finalized.File, nil
}
