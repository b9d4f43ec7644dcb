package api

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fretwise/fretwise-api/internal/api/handlers"
	apimiddleware "github.com/fretwise/fretwise-api/internal/api/middleware"
	"github.com/fretwise/fretwise-api/internal/config"
	"github.com/fretwise/fretwise-api/internal/metrics"
	"github.com/fretwise/fretwise-api/internal/middleware"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// CloudWatch metrics (production only)
	cloudwatch, err := metrics.NewClient(context.Background(), cfg.Environment)
	if err != nil {
		log.Printf("CloudWatch metrics unavailable: %v", err)
	}

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Auth routes (public)
	auth := router.Group("/api/auth")
	{
		authHandler := handlers.NewAuthHandler(db, cfg)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh", authHandler.Refresh)

		// OAuth routes
		oauthHandler := handlers.NewOAuthHandler(db, cfg)
		auth.GET("/:provider", oauthHandler.BeginAuth)         // /api/auth/google or /api/auth/github
		auth.GET("/:provider/callback", oauthHandler.Callback) // OAuth callback
	}

	// Engine routes v1 (public, stateless)
	v1 := router.Group("/api/v1")
	{
		analysisHandler := handlers.NewAnalysisHandler()
		v1.POST("/analysis/tuning", analysisHandler.AnalyzeTuning)
		v1.POST("/analysis/marked", analysisHandler.AnalyzeMarked)
		v1.POST("/analysis/reanalyze", analysisHandler.Reanalyze)
		v1.POST("/analysis/dashboard", analysisHandler.Dashboard)

		voicingHandler := handlers.NewVoicingHandler(cloudwatch)
		v1.POST("/voicings/search", voicingHandler.Search)
		v1.POST("/voicings/voice-leading", voicingHandler.VoiceLeading)

		progressionHandler := handlers.NewProgressionHandler(cloudwatch)
		v1.POST("/progressions/generate", progressionHandler.Generate)

		tablatureHandler := handlers.NewTablatureHandler()
		v1.POST("/tablature", tablatureHandler.Render)
		v1.POST("/tablature/diagram", tablatureHandler.Diagram)

		tensionHandler := handlers.NewTensionHandler()
		v1.POST("/tension", tensionHandler.Analyze)
	}

	// Protected library routes (require JWT)
	library := router.Group("/api/v1")
	library.Use(middleware.JWTAuth(db, cfg))
	{
		libraryHandler := handlers.NewLibraryHandler(db)
		library.GET("/library/tunings", libraryHandler.ListTunings)
		library.POST("/library/tunings", libraryHandler.SaveTuning)
		library.DELETE("/library/tunings/:id", libraryHandler.DeleteTuning)
		library.GET("/library/voicings", libraryHandler.ListVoicings)
		library.POST("/library/voicings", libraryHandler.SaveVoicing)
		library.DELETE("/library/voicings/:id", libraryHandler.DeleteVoicing)
		library.GET("/library/progressions", libraryHandler.ListProgressions)
		library.POST("/library/progressions", libraryHandler.SaveProgression)
		library.DELETE("/library/progressions/:id", libraryHandler.DeleteProgression)

		userHandler := handlers.NewUserHandler(db)
		library.GET("/me", userHandler.GetProfile)
	}

	return router
}
