package delivery

import (
	"net/http"

	"kisan-backend/internal/market/usecase"

	"github.com/gin-gonic/gin"
)

// MarketHandler handles market price endpoints
type MarketHandler struct {
	marketUsecase usecase.MarketUsecase
}

// NewMarketHandler creates a new instance of MarketHandler
func NewMarketHandler(marketUsecase usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{
		marketUsecase: marketUsecase,
	}
}

// GetPrices returns prices for a crop, optionally filtered to one mandi.
func (h *MarketHandler) GetPrices(c *gin.Context) {
	crop := c.Query("crop")
	if crop == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crop is required"})
		return
	}

	prices, err := h.marketUsecase.GetPrices(crop, c.Query("mandi"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load prices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": prices})
}
