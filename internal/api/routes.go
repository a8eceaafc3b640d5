package api

import (
	"voicebridge/internal/utils"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	// Health check
	r.GET("/health", healthCheck)

	// Telephony webhooks
	r.POST("/voice", h.voiceWebhook)
	r.POST("/process_recording", h.processRecording)

	// Operational call log
	v1 := r.Group("/api/v1")
	{
		v1.GET("/calls", listCalls)
		v1.GET("/calls/:call_id", getCall)
	}
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "voicebridge",
	})
}
