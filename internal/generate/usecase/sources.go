package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"aibridge-srv/internal/generate"
	"aibridge-srv/pkg/genesys"
)

// fileSource is one file to fetch, classified by modality.
type fileSource struct {
	modality generate.Modality
	url      string
	mimeType string
}

// resolveSources decides where the request's files come from: the latest
// customer attachment of a conversation, or the literal download URL fields.
func (uc *implUseCase) resolveSources(ctx context.Context, creds genesys.Credentials, input generate.Input) ([]fileSource, error) {
	if input.ProcessLastConversationFile {
		if creds.ClientID == "" || creds.ClientSecret == "" {
			return nil, generate.ErrMissingGenesysCredentials
		}
		media, err := uc.genesys.LatestCustomerMedia(ctx, creds, input.ConversationID)
		if err != nil {
			if errors.Is(err, genesys.ErrNoCustomerMedia) {
				return nil, fmt.Errorf("%w: conversation %s", generate.ErrNoCustomerMedia, input.ConversationID)
			}
			return nil, fmt.Errorf("%w: %v", generate.ErrFileDownloadFailed, err)
		}
		modality := modalityForMediaType(media.MediaType)
		return []fileSource{{
			modality: modality,
			url:      media.URL,
			mimeType: mimeForAttachment(modality, media),
		}}, nil
	}

	var sources []fileSource
	if input.PDFDownloadURL != "" {
		sources = append(sources, fileSource{
			modality: generate.ModalityDocument,
			url:      input.PDFDownloadURL,
			mimeType: generate.MimePDF,
		})
	}
	if input.ImageDownloadURL != "" {
		sources = append(sources, fileSource{
			modality: generate.ModalityImage,
			url:      input.ImageDownloadURL,
			mimeType: imageMimeType(input.ImageDownloadURL),
		})
	}
	if input.AudioDownloadURL != "" {
		sources = append(sources, fileSource{
			modality: generate.ModalityAudio,
			url:      input.AudioDownloadURL,
			mimeType: audioMimeType(input.AudioDownloadURL),
		})
	}
	return sources, nil
}

// modalityForMediaType classifies a conversation attachment by its reported
// media type. Anything that is not image or audio is treated as a document.
func modalityForMediaType(mediaType string) generate.Modality {
	switch {
	case strings.HasPrefix(mediaType, "image"):
		return generate.ModalityImage
	case strings.HasPrefix(mediaType, "audio"):
		return generate.ModalityAudio
	default:
		return generate.ModalityDocument
	}
}

// mimeForAttachment prefers the attachment's concrete media type; otherwise
// falls back to the extension heuristic on its download URL.
func mimeForAttachment(modality generate.Modality, media *genesys.MediaAttachment) string {
	if strings.Contains(media.MediaType, "/") {
		return media.MediaType
	}
	switch modality {
	case generate.ModalityImage:
		return imageMimeType(media.URL)
	case generate.ModalityAudio:
		return audioMimeType(media.URL)
	default:
		return generate.MimePDF
	}
}

// urlExtension returns the lowercased extension of the URL path, ignoring
// query parameters.
func urlExtension(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.ToLower(path.Ext(rawURL))
	}
	return strings.ToLower(path.Ext(u.Path))
}

// imageMimeType maps an image URL to PNG/JPEG/WEBP, defaulting to JPEG.
func imageMimeType(rawURL string) string {
	switch urlExtension(rawURL) {
	case ".png":
		return generate.MimePNG
	case ".webp":
		return generate.MimeWEBP
	default:
		return generate.MimeJPEG
	}
}

// audioMimeType maps an audio URL to WAV/MP3/OGG, defaulting to MP3.
func audioMimeType(rawURL string) string {
	switch urlExtension(rawURL) {
	case ".wav":
		return generate.MimeWAV
	case ".ogg":
		return generate.MimeOGG
	default:
		return generate.MimeMP3
	}
}
