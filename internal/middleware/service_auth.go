package middleware

import (
	"strings"

	"aibridge-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ServiceAuth validates the X-Service-Key header for internal
// service-to-service authentication. The header value is an encrypted
// "serviceName:key" pair checked against the configured service keys.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceKey := c.GetHeader("X-Service-Key")
		if serviceKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		decryptedKey, err := m.encrypter.Decrypt(serviceKey)
		if err != nil {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Decrypt failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(decryptedKey, ":", 2)
		if len(parts) != 2 {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName, keyValue := parts[0], parts[1]

		configuredKey, exists := m.config.InternalConfig.ServiceKeys[serviceName]
		if !exists {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Service not found: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// do not log key values
		if keyValue != configuredKey {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("service_name", serviceName)
		c.Next()
	}
}
