package http

import (
	"encoding/json"
	"fmt"
	"math"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindNumber
	kindInteger
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindBool:
		return "boolean"
	case kindNumber:
		return "number"
	default:
		return "integer"
	}
}

type fieldRule struct {
	name     string
	kind     fieldKind
	required bool
}

// payloadSchema is the closed field set of the request payload. Fields not
// listed here are accepted and echoed back in the response untouched.
var payloadSchema = []fieldRule{
	{name: "provider", kind: kindString, required: true},
	{name: "model", kind: kindString, required: true},
	{name: "user_message", kind: kindString, required: true},
	{name: "processLastConversationFile", kind: kindBool, required: true},
	{name: "pdfDownloadUrl", kind: kindString},
	{name: "imageDownloadUrl", kind: kindString},
	{name: "audioDownloadUrl", kind: kindString},
	{name: "conversationId", kind: kindString},
	{name: "temperature", kind: kindNumber},
	{name: "max_tokens", kind: kindInteger},
	{name: "system_message", kind: kindString},
	{name: "isJsonResponse", kind: kindBool},
	{name: "responseSchema", kind: kindString},
}

func matchesKind(value any, kind fieldKind) bool {
	switch kind {
	case kindString:
		_, ok := value.(string)
		return ok
	case kindBool:
		_, ok := value.(bool)
		return ok
	case kindNumber:
		_, ok := value.(float64)
		return ok
	default:
		v, ok := value.(float64)
		return ok && v == math.Trunc(v)
	}
}

// validatePayload checks the payload against the schema and the conditional
// requirements, returning the first violation. responseSchema is parsed here
// so that schema errors surface before any network call.
func validatePayload(payload map[string]any) error {
	for _, rule := range payloadSchema {
		value, present := payload[rule.name]
		if !present || value == nil {
			if rule.required {
				return fmt.Errorf("missing required field: %s", rule.name)
			}
			continue
		}
		if !matchesKind(value, rule.kind) {
			return fmt.Errorf("field %s must be of type %s", rule.name, rule.kind)
		}
	}

	if processLast, _ := payload["processLastConversationFile"].(bool); processLast {
		if conversationID, _ := payload["conversationId"].(string); conversationID == "" {
			return fmt.Errorf("conversationId is required when processLastConversationFile is true")
		}
	}

	if isJSON, _ := payload["isJsonResponse"].(bool); isJSON {
		schema, _ := payload["responseSchema"].(string)
		if schema == "" {
			return fmt.Errorf("responseSchema is required when isJsonResponse is true")
		}
		if !json.Valid([]byte(schema)) {
			return fmt.Errorf("responseSchema is not valid JSON")
		}
	}

	return nil
}

// recognizedFields is the declared input field set; anything else in the
// payload is a pass-through extra.
var recognizedFields = func() map[string]struct{} {
	m := make(map[string]struct{}, len(payloadSchema))
	for _, rule := range payloadSchema {
		m[rule.name] = struct{}{}
	}
	return m
}()

func extraFields(payload map[string]any) map[string]any {
	extras := make(map[string]any)
	for k, v := range payload {
		if _, ok := recognizedFields[k]; !ok {
			extras[k] = v
		}
	}
	if len(extras) == 0 {
		return nil
	}
	return extras
}
