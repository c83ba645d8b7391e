package delivery

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"kisan-backend/internal/diagnosis/dto"
	"kisan-backend/internal/diagnosis/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DiagnosisHandler handles crop-disease diagnosis endpoints
type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	uploadDir        string
}

// NewDiagnosisHandler creates a new instance of DiagnosisHandler
func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, uploadDir string) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		uploadDir:        uploadDir,
	}
}

// Diagnose accepts a multipart form (crop, optional description, optional
// image) and returns the disease label from the configured classifier.
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	var req dto.DiagnoseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crop is required"})
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		imagePath = filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, imagePath); err != nil {
			log.Printf("[Diagnosis] Failed to save uploaded image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
	}

	resp, err := h.diagnosisUsecase.Diagnose(c.Request.Context(), c.GetString("userID"), req.Crop, req.Description, imagePath)
	if err != nil {
		log.Printf("[Diagnosis] Classification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "diagnosis failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History returns the farmer's past diagnoses, newest first.
func (h *DiagnosisHandler) History(c *gin.Context) {
	history, err := h.diagnosisUsecase.History(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
