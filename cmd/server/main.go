package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nearme/internal/config"
	"nearme/internal/handler"
	"nearme/internal/repository"
	"nearme/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.Logging)

	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("NearMe server starting")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Optional search/feedback log database
	var repo *repository.PostgresRepository
	if cfg.PostgreSQL.DSN != "" {
		repo, err = repository.NewPostgresRepository(
			cfg.PostgreSQL.DSN,
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer repo.Close()
		log.Info().Msg("Connected to PostgreSQL database")
	} else {
		log.Info().Msg("No DATABASE_URL configured, search logging disabled")
	}

	// Provider clients
	openaiClient := service.NewOpenAIClient(&cfg.OpenAI)
	if cfg.OpenAI.Enabled {
		log.Info().
			Str("api_base", cfg.OpenAI.APIBase).
			Str("chat_model", cfg.OpenAI.ChatModel).
			Float64("temperature", cfg.OpenAI.Temperature).
			Msg("OpenAI client initialized")
	} else {
		log.Warn().Msg("OPENAI_API_KEY is not set, searches will use the keyword fallback")
	}

	placesClient := service.NewPlacesClient(&cfg.Google)
	geocoder := service.NewGeocoder(&cfg.Google)
	if !cfg.Google.Enabled {
		log.Warn().Msg("GOOGLE_API_KEY is not set, place lookups will fail with a configuration error")
	}

	// Services
	intentExtractor := service.NewIntentExtractor(openaiClient)
	transformer := service.NewPlaceTransformer(placesClient)

	var searchLogger service.SearchLogger
	var feedbackLogger handler.FeedbackLogger
	if repo != nil {
		searchLogger = repo
		feedbackLogger = repo
	}

	searchService := service.NewSearchService(intentExtractor, placesClient, transformer, searchLogger, cfg.Search.MaxResults)

	refresher := service.NewRefresher(searchService, cfg.Refresh.Interval)
	refresher.Start()
	defer refresher.Stop()

	log.Info().Msg("Services initialized")

	// Handlers
	searchHandler := handler.NewSearchHandler(searchService, refresher, cfg.Google.Enabled, cfg.Search.DefaultRadiusMeters, cfg.Search.PageSize)
	placesHandler := handler.NewPlacesHandler(placesClient, transformer, geocoder)
	feedbackHandler := handler.NewFeedbackHandler(feedbackLogger)
	featuredHandler := handler.NewFeaturedHandler()

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "nearme",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.POST("/search-ai", searchHandler.Search)
		api.GET("/live-results", searchHandler.LiveResults)
		api.POST("/live-results/more", searchHandler.LoadMore)

		api.GET("/place-details", placesHandler.Details)
		api.GET("/places-autocomplete", placesHandler.Autocomplete)
		api.POST("/reverse-geocode", placesHandler.ReverseGeocode)

		api.GET("/featured", featuredHandler.List)
		api.POST("/feedback", feedbackHandler.Submit)
	}

	// Serve static files (frontend)
	// Implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Starting server")

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
