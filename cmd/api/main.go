package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-summarizer/docs"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/analytics"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

// @title           Meeting Summarizer API
// @version         1.0
// @description     Compose summary prompts from meeting notes, parse generated summaries and export follow-ups

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	m := metrics.New()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.Origins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))
	e.Use(httpmw.Metrics(m))
	e.Use(httpmw.RateLimit(cfg.Server))

	logger.Info("🔧 Initializing dependencies...")

	// Analytics store
	store, closeStore, err := newAnalyticsStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize analytics store", zap.Error(err))
	}
	defer closeStore()
	analyticsSvc := analytics.NewService(store, logger)

	// AI clients are optional; operations that need a missing one answer 503
	services := map[string]string{"analytics": cfg.Analytics.Backend}
	var generator summary.Generator
	groqClient := pkgai.NewGroqClient(&cfg.Generation)
	if groqClient.Configured() {
		generator = groqClient
		services["generation"] = "groq"
	} else {
		logger.Warn("⚠️ GROQ_API_KEY not set, summary generation disabled")
		services["generation"] = "disabled"
	}

	var transcriber summary.Transcriber
	asmClient := pkgai.NewAssemblyAIClient(&cfg.AssemblyAI)
	if asmClient.Configured() {
		transcriber = asmClient
		services["transcription"] = "assemblyai"
	} else {
		logger.Warn("⚠️ ASSEMBLYAI_API_KEY not set, transcription disabled")
		services["transcription"] = "disabled"
	}

	summarySvc := summary.NewService(summary.Options{
		Generator:   generator,
		Transcriber: transcriber,
		Recorder:    analyticsSvc,
		Metrics:     m,
		Logger:      logger,
		Model:       cfg.Generation.Model,
	})

	router := handler.NewRouter(
		cfg,
		m,
		handler.NewSummaryHandler(summarySvc, logger),
		handler.NewReportHandler(m, logger),
		handler.NewTranscriptionHandler(summarySvc, cfg.Server.MaxUploadBytes, logger),
		handler.NewAnalyticsHandler(analyticsSvc, logger),
		services,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newAnalyticsStore(cfg *config.Config, logger *zap.Logger) (repositories.AnalyticsStore, func(), error) {
	if cfg.Analytics.Backend != config.BackendRedis {
		logger.Info("📦 Using in-memory analytics store")
		return cache.NewMemoryStore(), func() {}, nil
	}

	logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	return repository.NewAnalyticsRepository(client, cfg.Analytics.KeyPrefix), closeFn, nil
}
