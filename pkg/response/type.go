package response

import "encoding/json"

// Resp is the bridge response body. Transport status is always 200 OK; the
// business outcome travels in Status/Message. Extra carries unrecognized
// caller-supplied fields echoed back verbatim; declared fields always win
// over extras of the same name.
type Resp struct {
	Status         int
	Message        string
	GeminiResponse json.RawMessage
	TextOutput     string
	FinishReason   string
	Usage          json.RawMessage
	Detail         string
	Extra          map[string]any
}

// MarshalJSON flattens declared fields and extras into one object.
func (r Resp) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+7)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["status"] = r.Status
	out["message"] = r.Message
	if r.GeminiResponse != nil {
		out["geminiResponse"] = r.GeminiResponse
		out["textOutput"] = r.TextOutput
		out["finishReason"] = r.FinishReason
		if r.Usage != nil {
			out["usage"] = r.Usage
		} else {
			out["usage"] = json.RawMessage("{}")
		}
	}
	if r.Detail != "" {
		out["detail"] = r.Detail
	}
	return json.Marshal(out)
}
