package httpserver

import (
	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From AI Bridge API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "aibridge-srv"
)

// healthCheck handles health check requests.
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. The service is stateless; it
// is ready as soon as its handlers are mapped.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests.
func (srv HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
