package http

import (
	"encoding/json"

	"aibridge-srv/internal/generate"
	"aibridge-srv/pkg/response"
)

type generateReq struct {
	Provider                    string  `json:"provider"`
	Model                       string  `json:"model"`
	UserMessage                 string  `json:"user_message"`
	ProcessLastConversationFile bool    `json:"processLastConversationFile"`
	PDFDownloadURL              string  `json:"pdfDownloadUrl,omitempty"`
	ImageDownloadURL            string  `json:"imageDownloadUrl,omitempty"`
	AudioDownloadURL            string  `json:"audioDownloadUrl,omitempty"`
	ConversationID              string  `json:"conversationId,omitempty"`
	Temperature                 float64 `json:"temperature,omitempty"`
	MaxTokens                   int     `json:"max_tokens,omitempty"`
	SystemMessage               string  `json:"system_message,omitempty"`
	IsJSONResponse              bool    `json:"isJsonResponse,omitempty"`
	ResponseSchema              string  `json:"responseSchema,omitempty"`
}

func (r generateReq) toInput() generate.Input {
	input := generate.Input{
		Provider:                    r.Provider,
		Model:                       r.Model,
		UserMessage:                 r.UserMessage,
		ProcessLastConversationFile: r.ProcessLastConversationFile,
		PDFDownloadURL:              r.PDFDownloadURL,
		ImageDownloadURL:            r.ImageDownloadURL,
		AudioDownloadURL:            r.AudioDownloadURL,
		ConversationID:              r.ConversationID,
		Temperature:                 r.Temperature,
		MaxTokens:                   r.MaxTokens,
		SystemMessage:               r.SystemMessage,
		IsJSONResponse:              r.IsJSONResponse,
	}
	if r.IsJSONResponse && r.ResponseSchema != "" {
		input.ResponseSchema = json.RawMessage(r.ResponseSchema)
	}
	return input
}

func newGenerateResp(o generate.Output, extras map[string]any) response.Resp {
	return response.Resp{
		Status:         200,
		Message:        "Success",
		GeminiResponse: o.GeminiResponse,
		TextOutput:     o.TextOutput,
		FinishReason:   o.FinishReason,
		Usage:          o.Usage,
		Extra:          extras,
	}
}
