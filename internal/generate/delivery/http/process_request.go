package http

import (
	"encoding/json"
	"fmt"
	"slices"

	"aibridge-srv/internal/generate"
	"aibridge-srv/pkg/genesys"

	"github.com/gin-gonic/gin"
)

// Header names for per-request Genesys Cloud credentials. The Gemini key is
// deliberately not accepted from headers.
const (
	headerGenesysClientID     = "X-Genesys-Client-Id"
	headerGenesysClientSecret = "X-Genesys-Client-Secret"
)

// rawBodyField is the embedded raw-body carrier some invokers wrap the actual
// payload in; when present it takes precedence over the outer object.
const rawBodyField = "rawRequest"

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, map[string]any, genesys.Credentials, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return generateReq{}, nil, genesys.Credentials{}, errInvalidPayload
	}

	payload, err := extractPayload(raw)
	if err != nil {
		return generateReq{}, nil, genesys.Credentials{}, errInvalidPayload
	}

	extras := extraFields(payload)

	if err := validatePayload(payload); err != nil {
		return generateReq{}, extras, genesys.Credentials{}, newValidationError(err.Error())
	}

	req, err := decodeGenerateReq(payload)
	if err != nil {
		return generateReq{}, extras, genesys.Credentials{}, errInvalidPayload
	}

	if err := h.validateDomain(req); err != nil {
		return generateReq{}, extras, genesys.Credentials{}, err
	}

	return req, extras, h.resolveCredentials(c), nil
}

// extractPayload parses the invocation body. An embedded rawRequest string is
// the actual payload when present.
func extractPayload(raw []byte) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	if embedded, ok := payload[rawBodyField].(string); ok && embedded != "" {
		var inner map[string]any
		if err := json.Unmarshal([]byte(embedded), &inner); err != nil {
			return nil, fmt.Errorf("invalid embedded raw body: %w", err)
		}
		return inner, nil
	}
	return payload, nil
}

// decodeGenerateReq converts the validated payload map into the typed request.
func decodeGenerateReq(payload map[string]any) (generateReq, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return generateReq{}, err
	}
	req := generateReq{
		Temperature: generate.DefaultTemperature,
		MaxTokens:   generate.DefaultMaxTokens,
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return generateReq{}, err
	}
	return req, nil
}

// validateDomain enforces the enum and range constraints that the shape
// schema cannot express.
func (h *handler) validateDomain(req generateReq) error {
	if req.Provider != generate.ProviderGoogle {
		return errUnsupportedProvider
	}
	if !slices.Contains(h.cfg.Gemini.SupportedModels, req.Model) {
		return errUnsupportedModel
	}
	if req.MaxTokens < generate.MinMaxTokens || req.MaxTokens > generate.MaxMaxTokens {
		return errMaxTokensRange
	}
	return nil
}

// resolveCredentials reads Genesys Cloud credentials from request headers,
// falling back to configuration.
func (h *handler) resolveCredentials(c *gin.Context) genesys.Credentials {
	creds := genesys.Credentials{
		ClientID:     c.GetHeader(headerGenesysClientID),
		ClientSecret: c.GetHeader(headerGenesysClientSecret),
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		creds.ClientID = h.cfg.Genesys.ClientID
		creds.ClientSecret = h.cfg.Genesys.ClientSecret
	}
	return creds
}
