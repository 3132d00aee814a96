package usecase

import (
	"encoding/json"
	"strings"

	"aibridge-srv/internal/generate"
	"aibridge-srv/pkg/gemini"
)

// buildContents assembles the ordered content parts. With no files the prompt
// stands alone. A single document keeps the prompt first, then the file. In
// every other case the file parts come first, in source order, then the
// prompt. Preserve this ordering: callers depend on it for output parity.
func buildContents(files []uploadedFile, userMessage string) []gemini.Content {
	var parts []gemini.Part

	textPart := gemini.Part{Text: userMessage}
	fileParts := make([]gemini.Part, len(files))
	for i, f := range files {
		fileParts[i] = gemini.Part{FileData: &gemini.FileData{
			MimeType: f.mimeType,
			FileURI:  f.fileURI,
		}}
	}

	switch {
	case len(files) == 0:
		parts = []gemini.Part{textPart}
	case len(files) == 1 && files[0].modality == generate.ModalityDocument:
		if userMessage != "" {
			parts = append(parts, textPart)
		}
		parts = append(parts, fileParts...)
	default:
		parts = append(parts, fileParts...)
		if userMessage != "" {
			parts = append(parts, textPart)
		}
	}

	return []gemini.Content{{Role: "user", Parts: parts}}
}

// buildGenerationConfig always carries temperature and the token limit; JSON
// mode adds the strict response-format directive with the parsed schema.
func buildGenerationConfig(input generate.Input) *gemini.GenerationConfig {
	temperature := input.Temperature
	cfg := &gemini.GenerationConfig{
		Temperature:     &temperature,
		MaxOutputTokens: input.MaxTokens,
	}
	if input.IsJSONResponse && len(input.ResponseSchema) > 0 {
		cfg.ResponseMimeType = "application/json"
		cfg.ResponseSchema = input.ResponseSchema
	}
	return cfg
}

// formatOutput extracts the first candidate's first part text, the finish
// reason, and the usage metadata. JSON mode trims surrounding whitespace from
// the text and nothing else.
func formatOutput(resp *gemini.GenerateContentResponse, isJSONResponse bool) generate.Output {
	out := generate.Output{
		GeminiResponse: resp.Raw,
		Usage:          resp.UsageMetadata,
	}
	if out.Usage == nil {
		out.Usage = json.RawMessage("{}")
	}

	if len(resp.Candidates) > 0 {
		candidate := resp.Candidates[0]
		out.FinishReason = candidate.FinishReason
		if len(candidate.Content.Parts) > 0 {
			out.TextOutput = candidate.Content.Parts[0].Text
		}
	}

	if isJSONResponse {
		out.TextOutput = strings.TrimSpace(out.TextOutput)
	}
	return out
}
