package delivery

import (
	"net/http"

	"kisan-backend/internal/help/repository"

	"github.com/gin-gonic/gin"
)

// HelpHandler handles help history endpoints
type HelpHandler struct {
	helpRepo repository.HelpRepository
}

// NewHelpHandler creates a new instance of HelpHandler
func NewHelpHandler(helpRepo repository.HelpRepository) *HelpHandler {
	return &HelpHandler{
		helpRepo: helpRepo,
	}
}

// History returns the farmer's past voice-agent queries.
func (h *HelpHandler) History(c *gin.Context) {
	records, err := h.helpRepo.FindByUserID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}
