package middleware

import (
	"strings"

	"aibridge-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth authenticates internal callers. When a JWT secret is configured a
// bearer token is required; otherwise, when service keys are configured, an
// X-Service-Key header is required. With neither configured the middleware
// passes everything through (the deployment fronts its own auth).
func (m Middleware) Auth() gin.HandlerFunc {
	switch {
	case m.config.JWT.SecretKey != "" && m.jwtManager != nil:
		return m.jwtAuth()
	case len(m.config.InternalConfig.ServiceKeys) > 0:
		return m.ServiceAuth()
	default:
		return func(c *gin.Context) { c.Next() }
	}
}

func (m Middleware) jwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.l.Errorf(c.Request.Context(), "Auth: VerifyToken failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("service_name", claims.Service)
		c.Next()
	}
}
