package delivery

import (
	"errors"
	"net/http"

	"kisan-backend/internal/scheme/usecase"

	"github.com/gin-gonic/gin"
)

// SchemeHandler handles government scheme endpoints
type SchemeHandler struct {
	schemeUsecase usecase.SchemeUsecase
}

// NewSchemeHandler creates a new instance of SchemeHandler
func NewSchemeHandler(schemeUsecase usecase.SchemeUsecase) *SchemeHandler {
	return &SchemeHandler{
		schemeUsecase: schemeUsecase,
	}
}

type applyRequest struct {
	SchemeID string `json:"scheme_id" binding:"required"`
}

// Eligible lists schemes still open for application.
func (h *SchemeHandler) Eligible(c *gin.Context) {
	schemes, err := h.schemeUsecase.EligibleSchemes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schemes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"eligible_schemes": schemes})
}

// Apply submits a scheme application for the authenticated farmer.
func (h *SchemeHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheme_id is required"})
		return
	}

	application, err := h.schemeUsecase.Apply(c.Request.Context(), c.GetString("userID"), req.SchemeID)
	if err != nil {
		if errors.Is(err, usecase.ErrSchemeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "applied successfully", "application_id": application.ID})
}

// Applications lists the farmer's scheme applications.
func (h *SchemeHandler) Applications(c *gin.Context) {
	applications, err := h.schemeUsecase.Applications(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}
