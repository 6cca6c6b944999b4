package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/pkg/gateway"
)

// respondEnvelope relays a backend envelope to the browser with the
// backend's own status code.
func respondEnvelope(c *gin.Context, env *gateway.Envelope) {
	body := gin.H{"success": true}
	if env.Success != nil {
		body["success"] = *env.Success
	}
	if env.Message != "" {
		body["message"] = env.Message
	}
	if env.HasData() {
		body["data"] = env.Data
	}

	status := env.Status
	if status == 0 {
		status = 200
	}
	c.JSON(status, body)
}
