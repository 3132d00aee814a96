package generate

import "encoding/json"

const (
	// ProviderGoogle is the only supported provider value.
	ProviderGoogle = "google"

	DefaultTemperature = 0.2
	DefaultMaxTokens   = 4096
	MinMaxTokens       = 4
	MaxMaxTokens       = 8192
)

// Modality is the media category of an input file.
type Modality string

const (
	ModalityDocument Modality = "document"
	ModalityImage    Modality = "image"
	ModalityAudio    Modality = "audio"
)

// MIME types by modality. PDF is fixed; image and audio fall back to JPEG and
// MP3 when the file extension is unrecognized.
const (
	MimePDF  = "application/pdf"
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeWEBP = "image/webp"
	MimeWAV  = "audio/wav"
	MimeMP3  = "audio/mp3"
	MimeOGG  = "audio/ogg"
)

// Input is the validated generation request. ResponseSchema is already parsed
// as JSON by the delivery layer when IsJSONResponse is set.
type Input struct {
	Provider                    string
	Model                       string
	UserMessage                 string
	ProcessLastConversationFile bool
	PDFDownloadURL              string
	ImageDownloadURL            string
	AudioDownloadURL            string
	ConversationID              string
	Temperature                 float64
	MaxTokens                   int
	SystemMessage               string
	IsJSONResponse              bool
	ResponseSchema              json.RawMessage
}

// Output is the normalized generation result.
type Output struct {
	GeminiResponse json.RawMessage
	TextOutput     string
	FinishReason   string
	Usage          json.RawMessage
}
