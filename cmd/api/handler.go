package api

import (
	authUsecase "kisan-backend/internal/auth/usecase"
	"kisan-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Handler owns the gin engine and the route table.
type Handler struct {
	authUsecase authUsecase.AuthUsecase
	handlers    Handlers
	config      *config.Config
}

// NewHandler creates a new HTTP handler
func NewHandler(authUc authUsecase.AuthUsecase, handlers Handlers, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		handlers:    handlers,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.handlers)

	return r.Run(addr)
}
