package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swiftvtu/vtu_api/internal/utils"
	"github.com/swiftvtu/vtu_api/pkg/vtupay"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	provider *vtupay.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(provider *vtupay.Client) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// GetHealth responds with service and upstream provider status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	_, err := h.provider.GetBalance(c.Request.Context())

	providerStatus := "connected"
	if err != nil {
		providerStatus = "disconnected"
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"provider": gin.H{
			"status": providerStatus,
		},
	})
}
