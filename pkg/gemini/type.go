package gemini

import (
	"encoding/json"
	"fmt"
	"time"

	pkghttp "aibridge-srv/pkg/http"
)

// GeminiConfig holds the configuration for the Gemini client.
type GeminiConfig struct {
	APIKey        string
	BaseURL       string
	UploadBaseURL string
	Timeout       time.Duration
	HTTPClient    pkghttp.IClient
}

// geminiImpl implements IGemini using the Gemini REST API.
type geminiImpl struct {
	apiKey        string
	baseURL       string
	uploadBaseURL string
	httpClient    pkghttp.IClient
}

// GenerateContentRequest defines the request body for the Generate Content API.
type GenerateContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content represents a single content block.
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content: literal text or an uploaded file reference.
type Part struct {
	Text     string    `json:"text,omitempty"`
	FileData *FileData `json:"fileData,omitempty"`
}

// FileData references a file previously staged with the Files API.
type FileData struct {
	MimeType string `json:"mimeType,omitempty"`
	FileURI  string `json:"fileUri"`
}

// GenerationConfig holds generation parameters.
type GenerationConfig struct {
	Temperature      *float64        `json:"temperature,omitempty"`
	MaxOutputTokens  int             `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

// GenerateContentResponse defines the response body from the Generate Content API.
// Raw preserves the untouched provider body for passthrough.
type GenerateContentResponse struct {
	Candidates    []Candidate     `json:"candidates"`
	UsageMetadata json.RawMessage `json:"usageMetadata,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Candidate represents a generated candidate.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UploadFileInput holds one file to stage with the Files API.
type UploadFileInput struct {
	DisplayName string
	MimeType    string
	Data        []byte
}

// UploadedFile is the provider-issued reference for a staged file.
type UploadedFile struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// APIError is returned when the Gemini API answers with a non-success status.
// Body carries the raw provider response for diagnostics.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}
