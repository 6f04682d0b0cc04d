package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/moodloom/backend/internal/config"
	"github.com/moodloom/backend/internal/database"
	"github.com/moodloom/backend/internal/handlers"
	"github.com/moodloom/backend/internal/logger"
	"github.com/moodloom/backend/internal/middleware"
	"github.com/moodloom/backend/internal/repository"
	"github.com/moodloom/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Local development convenience; a missing .env is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize structured logging
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(os.Getenv("MOODLOOM_LOG_LEVEL"))
	logger.SetDefault(logger.NewSlogLogger(logCfg))

	logger.Info("starting moodloom API server",
		logger.String("env", cfg.Server.Env),
	)

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Connect to Redis (rate limiter backing store)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer rdb.Close()

	// Initialize repositories
	moodRepo := repository.NewMoodRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	// Initialize services
	moodService := service.NewMoodService(moodRepo)
	analyticsService := service.NewAnalyticsService(moodRepo, interactionRepo)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	exportHandler := handlers.NewExportHandler(analyticsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(rdb))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.Identity())
	{
		// Mood record routes
		protected.POST("/moods", moodHandler.CreateMood)
		protected.GET("/moods", moodHandler.GetMoods)

		// Analytics routes; registered before /moods/:id so the literal
		// segments take precedence
		protected.GET("/moods/analysis", analyticsHandler.GetAnalysis)
		protected.GET("/moods/patterns", analyticsHandler.GetPatterns)
		protected.GET("/moods/trends", analyticsHandler.GetTrends)
		protected.GET("/moods/frequency", analyticsHandler.GetFrequency)
		protected.GET("/moods/triggers", analyticsHandler.GetTriggers)
		protected.GET("/moods/interactions/analysis", analyticsHandler.GetInteractionAnalysis)
		protected.GET("/moods/recommendations", analyticsHandler.GetRecommendations)
		protected.GET("/moods/export", middleware.RateLimitExport(rdb), exportHandler.Export)

		protected.GET("/moods/:id", moodHandler.GetMood)
		protected.PUT("/moods/:id", moodHandler.UpdateMood)
		protected.DELETE("/moods/:id", moodHandler.DeleteMood)
	}

	logger.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
