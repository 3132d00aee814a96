package http

import (
	"aibridge-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Generate bridges one multimodal prompt to Gemini: validates the payload,
// fetches and stages any referenced files, runs the generation call, and
// returns the normalized result. Failures are reported in the same body shape
// as success, with the business status embedded.
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, extras, creds, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "generate.delivery.http.Generate: processGenerateRequest failed: %v", err)
		response.Error(c, err, "", extras, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, creds, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "generate.delivery.http.Generate: usecase Generate failed: %v", err)
		mapped, detail := h.mapError(err)
		response.Error(c, mapped, detail, extras, h.discord)
		return
	}

	response.OK(c, newGenerateResp(o, extras))
}
