package response

import (
	"errors"
	"fmt"
	"net/http"

	"aibridge-srv/pkg/discord"
	pkgErrors "aibridge-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a success body. Transport status is always 200.
func OK(c *gin.Context, resp Resp) {
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	if resp.Message == "" {
		resp.Message = "Success"
	}
	c.JSON(http.StatusOK, resp)
}

// Error writes an error body. HTTPError values keep their business status;
// anything else is reported as an internal error. Detail carries the
// lower-level diagnostic text. Failures with status >= 500 are forwarded to
// the Discord notifier when one is configured.
func Error(c *gin.Context, err error, detail string, extra map[string]any, d discord.IDiscord) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = httpErr.Message
	}

	if status >= 500 && d != nil {
		d.SendError(c.Request.Context(), fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), message, err)
	}

	c.JSON(http.StatusOK, Resp{
		Status:  status,
		Message: message,
		Detail:  detail,
		Extra:   extra,
	})
}

// PanicError reports a recovered panic as an internal error body.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		d.SendError(c.Request.Context(), fmt.Sprintf("panic at %s %s", c.Request.Method, c.Request.URL.Path), "panic recovered", fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusOK, Resp{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
		Detail:  fmt.Sprintf("%v", recovered),
	})
}

// Unauthorized rejects the request at the transport level. Caller
// authentication is not part of the pipeline contract, so this is a real 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized",
	})
}
