package api

import (
	"net/http"

	authDelivery "kisan-backend/internal/auth/delivery"
	authUsecase "kisan-backend/internal/auth/usecase"
	diagnosisDelivery "kisan-backend/internal/diagnosis/delivery"
	helpDelivery "kisan-backend/internal/help/delivery"
	marketDelivery "kisan-backend/internal/market/delivery"
	notificationDelivery "kisan-backend/internal/notification/delivery"
	schemeDelivery "kisan-backend/internal/scheme/delivery"
	voiceDelivery "kisan-backend/internal/voiceagent/delivery"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the per-feature HTTP handlers for route setup.
type Handlers struct {
	Auth         *authDelivery.AuthHandler
	Diagnosis    *diagnosisDelivery.DiagnosisHandler
	Market       *marketDelivery.MarketHandler
	Scheme       *schemeDelivery.SchemeHandler
	Notification *notificationDelivery.NotificationHandler
	Help         *helpDelivery.HelpHandler
	VoiceAgent   *voiceDelivery.VoiceAgentHandler
}

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, h Handlers) {
	guard := authDelivery.AuthMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", guard, h.Auth.Me)
		}

		// Profile routes (protected)
		users := api.Group("/users")
		users.Use(guard)
		{
			users.GET("/profile", h.Auth.GetProfile)
			users.PUT("/profile", h.Auth.UpdateProfile)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(guard)
		{
			fcm.POST("/register", h.Auth.RegisterFCMToken)
			fcm.DELETE("/:token", h.Auth.UnregisterFCMToken)
		}

		// Diagnosis routes (protected)
		diagnosis := api.Group("/diagnosis")
		diagnosis.Use(guard)
		{
			diagnosis.POST("", h.Diagnosis.Diagnose)
			diagnosis.GET("/history", h.Diagnosis.History)
		}

		// Market routes (protected)
		market := api.Group("/market")
		market.Use(guard)
		{
			market.GET("/prices", h.Market.GetPrices)
		}

		// Scheme routes (protected)
		schemes := api.Group("/schemes")
		schemes.Use(guard)
		{
			schemes.GET("/eligible", h.Scheme.Eligible)
			schemes.POST("/apply", h.Scheme.Apply)
			schemes.GET("/applications", h.Scheme.Applications)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(guard)
		{
			notifications.GET("", h.Notification.List)
			notifications.POST("/:id/read", h.Notification.MarkRead)
		}

		// Help history (protected)
		help := api.Group("/help")
		help.Use(guard)
		{
			help.GET("/history", h.Help.History)
		}

		// Voice agent (protected)
		api.POST("/voice-agent", guard, h.VoiceAgent.Handle)
	}
}
