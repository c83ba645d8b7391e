package main

import (
	"context"
	"log"

	api "kisan-backend/cmd/api"
	authDelivery "kisan-backend/internal/auth/delivery"
	authdomain "kisan-backend/internal/auth/domain"
	authRepo "kisan-backend/internal/auth/repository"
	authUsecase "kisan-backend/internal/auth/usecase"
	diagnosisDelivery "kisan-backend/internal/diagnosis/delivery"
	diagnosisdomain "kisan-backend/internal/diagnosis/domain"
	diagnosisRepo "kisan-backend/internal/diagnosis/repository"
	diagnosisUsecase "kisan-backend/internal/diagnosis/usecase"
	helpDelivery "kisan-backend/internal/help/delivery"
	helpdomain "kisan-backend/internal/help/domain"
	helpRepo "kisan-backend/internal/help/repository"
	marketDelivery "kisan-backend/internal/market/delivery"
	marketdomain "kisan-backend/internal/market/domain"
	marketRepo "kisan-backend/internal/market/repository"
	marketScheduler "kisan-backend/internal/market/scheduler"
	marketUsecase "kisan-backend/internal/market/usecase"
	notificationDelivery "kisan-backend/internal/notification/delivery"
	notificationdomain "kisan-backend/internal/notification/domain"
	notificationRepo "kisan-backend/internal/notification/repository"
	notificationUsecase "kisan-backend/internal/notification/usecase"
	schemeDelivery "kisan-backend/internal/scheme/delivery"
	schemedomain "kisan-backend/internal/scheme/domain"
	schemeRepo "kisan-backend/internal/scheme/repository"
	schemeScheduler "kisan-backend/internal/scheme/scheduler"
	schemeUsecase "kisan-backend/internal/scheme/usecase"
	voiceDelivery "kisan-backend/internal/voiceagent/delivery"
	voiceUsecase "kisan-backend/internal/voiceagent/usecase"
	"kisan-backend/pkg/classifier"
	"kisan-backend/pkg/config"
	"kisan-backend/pkg/database"
	"kisan-backend/pkg/fcm"
	"kisan-backend/pkg/firebase"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.FCMToken{},
		&diagnosisdomain.CropDiagnosis{},
		&marketdomain.MarketPrice{},
		&schemedomain.Scheme{},
		&schemedomain.SchemeApplication{},
		&notificationdomain.Notification{},
		&helpdomain.HelpHistory{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize the Firebase verifier once at startup. Login requests fail
	// closed with a distinct error if this never succeeded.
	if err := firebase.Init(context.Background(), cfg.FirebaseCredentials, cfg.FirebaseTimeout); err != nil {
		log.Printf("[WARN] Failed to initialize Firebase verifier (logins will fail): %v", err)
	}
	verifier, err := firebase.Default()
	if err != nil {
		log.Printf("[WARN] Firebase verifier unavailable: %v", err)
	}

	// Initialize FCM client (optional, notifications still recorded without it)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push disabled): %v", err)
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize the disease classifier
	clf, err := classifier.New(classifier.Config{
		Provider:      classifier.ProviderType(cfg.ClassifierProvider),
		ModelEndpoint: cfg.ModelEndpoint,
	})
	if err != nil {
		log.Fatal("Failed to initialize classifier:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	refreshTokenRepository := authRepo.NewRefreshTokenRepository(db)
	fcmTokenRepository := authRepo.NewFCMTokenRepository(db)
	diagnosisRepository := diagnosisRepo.NewDiagnosisRepository(db)
	marketRepository := marketRepo.NewMarketRepository(db)
	schemeRepository := schemeRepo.NewSchemeRepository(db)
	notificationRepository := notificationRepo.NewNotificationRepository(db)
	helpRepository := helpRepo.NewHelpRepository(db)

	// Initialize use cases (dependency injection)
	notificationUc := notificationUsecase.NewNotificationUsecase(notificationRepository, fcmTokenRepository, fcmClient)
	authUc := authUsecase.NewAuthUsecase(db, verifier, userRepository, refreshTokenRepository, fcmTokenRepository, cfg)
	diagnosisUc := diagnosisUsecase.NewDiagnosisUsecase(diagnosisRepository, clf, notificationUc)
	marketUc := marketUsecase.NewMarketUsecase(marketRepository)
	schemeUc := schemeUsecase.NewSchemeUsecase(schemeRepository, notificationUc)
	voiceUc := voiceUsecase.NewVoiceAgentUsecase(diagnosisUc, marketUc, schemeUc, helpRepository)

	// Start the market price and scheme catalog sync schedulers
	priceSync := marketScheduler.NewPriceSyncScheduler(marketRepository, cfg.MarketFeedURL, cfg.MarketSyncInterval)
	priceSync.Start()
	schemeSync := schemeScheduler.NewSchemeSyncScheduler(schemeRepository, cfg.SchemeFeedURL, cfg.SchemeSyncInterval)
	schemeSync.Start()

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, api.Handlers{
		Auth:         authDelivery.NewAuthHandler(authUc),
		Diagnosis:    diagnosisDelivery.NewDiagnosisHandler(diagnosisUc, cfg.UploadDir),
		Market:       marketDelivery.NewMarketHandler(marketUc),
		Scheme:       schemeDelivery.NewSchemeHandler(schemeUc),
		Notification: notificationDelivery.NewNotificationHandler(notificationUc),
		Help:         helpDelivery.NewHelpHandler(helpRepository),
		VoiceAgent:   voiceDelivery.NewVoiceAgentHandler(voiceUc),
	}, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
