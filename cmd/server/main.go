package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/agrovia/partnership-api/internal/config"
	"github.com/agrovia/partnership-api/internal/database"
	"github.com/agrovia/partnership-api/internal/handlers"
	"github.com/agrovia/partnership-api/internal/middleware"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/agrovia/partnership-api/internal/services"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	estimatedYield, err := decimal.NewFromString(cfg.EstimatedYield)
	if err != nil {
		log.Fatalf("Invalid ESTIMATED_YIELD_TONS_PER_HECTARE: %v", err)
	}
	marketPrice, err := decimal.NewFromString(cfg.CurrentMarketPrice)
	if err != nil {
		log.Fatalf("Invalid MARKET_PRICE_PER_TON: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions("agri_session", store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	partnershipRepo := repository.NewPartnershipRepository(db)
	plotRepo := repository.NewFarmPlotRepository(db)
	activityRepo := repository.NewFarmActivityRepository(db)
	recordRepo := repository.NewFinancialRecordRepository(db)
	policyRepo := repository.NewInsurancePolicyRepository(db)
	alertRepo := repository.NewRiskAlertRepository(db)
	eventRepo := repository.NewCommunityEventRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	partnershipService := services.NewPartnershipService(partnershipRepo, userRepo)
	farmService := services.NewFarmService(plotRepo, activityRepo, partnershipRepo, userRepo)
	financeService := services.NewFinanceService(recordRepo, plotRepo, partnershipRepo, estimatedYield, marketPrice)
	insuranceService := services.NewInsuranceService(policyRepo, partnershipRepo)
	riskService := services.NewRiskService(alertRepo, plotRepo)
	communityService := services.NewCommunityService(eventRepo, userRepo)
	messagingService := services.NewMessagingService(notificationRepo, chatRepo, userRepo)
	dashboardService := services.NewDashboardService(partnershipRepo, plotRepo, activityRepo, recordRepo, notificationRepo, alertRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	partnershipHandler := handlers.NewPartnershipHandler(partnershipService, dashboardService)
	farmHandler := handlers.NewFarmHandler(farmService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	insuranceHandler := handlers.NewInsuranceHandler(insuranceService)
	riskAlertHandler := handlers.NewRiskAlertHandler(riskService)
	communityEventHandler := handlers.NewCommunityEventHandler(communityService)
	messagingHandler := handlers.NewMessagingHandler(messagingService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Agri Partnership API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Platform routes (protected)
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.POST("/partnerships", partnershipHandler.CreatePartnership)
			protected.GET("/partners/:id/dashboard", partnershipHandler.GetPartnerDashboard)
			protected.GET("/partnerships/:id/financial-summary", financeHandler.GetFinancialSummary)

			protected.POST("/farm-plots", farmHandler.CreateFarmPlot)
			protected.GET("/farm-plots/:id/activities", farmHandler.GetFarmActivities)
			protected.POST("/farm-activities", farmHandler.CreateFarmActivity)

			protected.POST("/financial-records", financeHandler.CreateFinancialRecord)
			protected.POST("/insurance-policies", insuranceHandler.CreateInsurancePolicy)

			protected.POST("/risk-alerts", riskAlertHandler.CreateRiskAlert)
			protected.GET("/risk-alerts", riskAlertHandler.GetRiskAlerts)

			protected.POST("/community-events", communityEventHandler.CreateCommunityEvent)
			protected.GET("/community-events", communityEventHandler.GetCommunityEvents)

			protected.POST("/notifications", messagingHandler.CreateNotification)
			protected.GET("/users/:id/notifications", messagingHandler.GetUserNotifications)

			protected.POST("/chat/messages", messagingHandler.SendChatMessage)
			protected.GET("/chat/messages", messagingHandler.GetChatMessages)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
