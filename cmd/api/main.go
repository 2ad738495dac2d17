package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"muhasib/internal/config"
	"muhasib/internal/database"
	"muhasib/internal/handlers"
	"muhasib/internal/logger"
	"muhasib/internal/middleware"
	"muhasib/internal/provider"
	"muhasib/internal/services"
	"muhasib/internal/store"
	"muhasib/internal/validator"

	_ "muhasib/internal/docs" // Import swagger docs
)

// @title           Muhasib API
// @version         1.0
// @description     Muhasib is an offline-first zakat calculator that values holdings against the nisab, tracks payments, and keeps a capped calculation history.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validators on the Gin binding engine
	validator.Register()

	// Create database manager and run migrations
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	blobStore := store.New(dbManager.DB())
	ledgerService, err := services.NewLedgerService(blobStore)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	valuationService := services.NewValuationService(ledgerService)
	draftService := services.NewDraftService(blobStore)
	ratesService := services.NewRatesService(
		provider.NewGoldAPIProvider(http.DefaultClient),
	)

	// Initialize handlers
	valuationHandler := handlers.NewValuationHandler(valuationService, ledgerService, draftService)
	paymentHandler := handlers.NewPaymentHandler(ledgerService)
	calculationHandler := handlers.NewCalculationHandler(valuationService, ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(ledgerService, draftService)
	draftHandler := handlers.NewDraftHandler(draftService)
	ratesHandler := handlers.NewRatesHandler(ratesService)
	lockHandler := handlers.NewLockHandler()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/unlock", lockHandler.Unlock)
	v1.GET("/lock", lockHandler.GetLockStatus)

	// Protected routes (pass-through when the lock is disabled)
	protected := v1.Group("/")
	protected.Use(middleware.LockMiddleware())

	protected.POST("/calculate", valuationHandler.Calculate)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	// Payment routes
	payments := protected.Group("/payments")
	payments.POST("", paymentHandler.CreatePayment)
	payments.GET("", paymentHandler.GetPayments)
	payments.DELETE("/:id", paymentHandler.DeletePayment)

	// Calculation history routes
	calculations := protected.Group("/calculations")
	calculations.POST("", calculationHandler.SaveCalculation)
	calculations.GET("", calculationHandler.GetCalculations)
	calculations.DELETE("/:index", calculationHandler.DeleteCalculation)

	// Draft routes
	draft := protected.Group("/draft")
	draft.GET("", draftHandler.GetDraft)
	draft.PUT("", draftHandler.PutDraft)
	draft.POST("/reset", draftHandler.ResetDraft)

	// Rate feed routes
	protected.GET("/rates/live", ratesHandler.GetLiveRates)

	addr := ":" + appConfig.Port
	log.Infof("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
