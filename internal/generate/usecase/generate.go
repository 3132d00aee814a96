package usecase

import (
	"context"
	"fmt"
	"net/http"

	"aibridge-srv/internal/generate"
	"aibridge-srv/pkg/gemini"
	"aibridge-srv/pkg/genesys"

	"github.com/google/uuid"
)

// uploadedFile pairs a staged file reference with its source modality.
type uploadedFile struct {
	modality generate.Modality
	fileURI  string
	mimeType string
}

// Generate runs the whole pipeline for one request: resolve file sources,
// fetch and stage each file, then issue the generation call and shape the
// result. Every step runs once, sequentially; the first failure aborts.
func (uc *implUseCase) Generate(ctx context.Context, creds genesys.Credentials, input generate.Input) (generate.Output, error) {
	sources, err := uc.resolveSources(ctx, creds, input)
	if err != nil {
		return generate.Output{}, err
	}

	files := make([]uploadedFile, 0, len(sources))
	for _, src := range sources {
		data, err := uc.fetchFile(ctx, creds, src)
		if err != nil {
			return generate.Output{}, err
		}

		uploaded, err := uc.gemini.UploadFile(ctx, gemini.UploadFileInput{
			DisplayName: fmt.Sprintf("%s-%s", src.modality, uuid.New().String()),
			MimeType:    src.mimeType,
			Data:        data,
		})
		if err != nil {
			return generate.Output{}, fmt.Errorf("%w: %v", generate.ErrFileUploadFailed, err)
		}
		uc.l.Infof(ctx, "generate.usecase.Generate: staged %s file as %s (%d bytes)", src.modality, uploaded.URI, len(data))

		files = append(files, uploadedFile{
			modality: src.modality,
			fileURI:  uploaded.URI,
			mimeType: uploaded.MimeType,
		})
	}

	req := gemini.GenerateContentRequest{
		Contents:         buildContents(files, input.UserMessage),
		GenerationConfig: buildGenerationConfig(input),
	}
	if input.SystemMessage != "" {
		req.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: input.SystemMessage}},
		}
	}

	resp, err := uc.gemini.GenerateContent(ctx, input.Model, req)
	if err != nil {
		return generate.Output{}, fmt.Errorf("%w: %v", generate.ErrGenerationFailed, err)
	}

	return formatOutput(resp, input.IsJSONResponse), nil
}

// fetchFile retrieves a file's raw bytes. Stored-download URLs go through the
// Genesys OAuth exchange; anything else is a plain unauthenticated GET.
func (uc *implUseCase) fetchFile(ctx context.Context, creds genesys.Credentials, src fileSource) ([]byte, error) {
	if genesys.IsStoredDownloadURL(src.url) {
		if creds.ClientID == "" || creds.ClientSecret == "" {
			return nil, generate.ErrMissingGenesysCredentials
		}
		data, err := uc.genesys.DownloadStoredFile(ctx, creds, src.url)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", generate.ErrFileDownloadFailed, err)
		}
		return data, nil
	}

	body, statusCode, err := uc.fetcher.Get(ctx, src.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generate.ErrFileDownloadFailed, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s returned status %d", generate.ErrFileDownloadFailed, src.url, statusCode)
	}
	return body, nil
}
