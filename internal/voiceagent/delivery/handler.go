package delivery

import (
	"net/http"

	"kisan-backend/internal/voiceagent/usecase"

	"github.com/gin-gonic/gin"
)

// VoiceAgentHandler handles the voice-agent dispatch endpoint
type VoiceAgentHandler struct {
	voiceAgentUsecase usecase.VoiceAgentUsecase
}

// NewVoiceAgentHandler creates a new instance of VoiceAgentHandler
func NewVoiceAgentHandler(voiceAgentUsecase usecase.VoiceAgentUsecase) *VoiceAgentHandler {
	return &VoiceAgentHandler{
		voiceAgentUsecase: voiceAgentUsecase,
	}
}

type voiceAgentRequest struct {
	Intent     string            `json:"intent" binding:"required"`
	Parameters map[string]string `json:"parameters"`
}

// Handle routes a recognized voice intent to the matching feature.
func (h *VoiceAgentHandler) Handle(c *gin.Context) {
	var req voiceAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intent is required"})
		return
	}

	response, err := h.voiceAgentUsecase.Handle(c.Request.Context(), c.GetString("userID"), req.Intent, req.Parameters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "voice agent failed"})
		return
	}
	c.JSON(http.StatusOK, response)
}
