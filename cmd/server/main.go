package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sasank-sasi/Vertx/internal/comlog"
	"github.com/sasank-sasi/Vertx/internal/config"
	"github.com/sasank-sasi/Vertx/internal/email"
	"github.com/sasank-sasi/Vertx/internal/groq"
	"github.com/sasank-sasi/Vertx/internal/handler"
	"github.com/sasank-sasi/Vertx/internal/llm"
	"github.com/sasank-sasi/Vertx/internal/matching"
	"github.com/sasank-sasi/Vertx/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting Founder Matching Service...")

	// Load .env if present so config expansion picks up secrets
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", zap.Error(err))
	}

	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize LLM client (multi-provider with rate limiting)
	var llmClient llm.Provider

	// Try to use multi-provider if providers are configured
	if len(cfg.Providers) > 0 {
		multiClient, err := llm.NewMultiProviderClient(llm.MultiProviderConfig{
			Providers:   cfg.Providers,
			MaxFailures: cfg.MaxFailuresBeforeSwitch,
		}, logger)
		if err != nil {
			logger.Warn("Failed to initialize multi-provider client, falling back to single provider",
				zap.Error(err))
		} else {
			llmClient = multiClient
			defer multiClient.Close()
			logger.Info("Multi-provider client initialized",
				zap.Int("provider_count", len(cfg.Providers)))
		}
	}

	// Fallback to single Groq client if multi-provider failed or not configured
	if llmClient == nil {
		if cfg.Groq.APIKey == "" || cfg.Groq.APIKey == "YOUR_API_KEY_HERE" {
			logger.Fatal("Groq API key not configured. Please set it in configs/config.yml or environment variable")
		}

		groqClient, err := groq.NewClient(groq.Config{
			APIKey:     cfg.Groq.APIKey,
			ModelName:  cfg.Groq.ModelName,
			MaxRetries: cfg.Groq.MaxRetries,
			RetryDelay: 2 * time.Second,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Groq client", zap.Error(err))
		}
		defer groqClient.Close()

		// Wrap with rate limiting
		llmClient = llm.NewRateLimitedProvider(groqClient, 30, logger)
		logger.Info("Single provider client initialized with rate limiting")
	}

	// Create data directory if not exists
	os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755)
	os.MkdirAll(cfg.Logs.Dir, 0755)
	if cfg.Matching.ExportDir != "" {
		os.MkdirAll(cfg.Matching.ExportDir, 0755)
	}

	// Initialize repository
	history, err := repository.NewCommunicationRepository(cfg.Database.Path, logger)
	if err != nil {
		logger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer history.Close()

	// Initialize matching pipelines
	scorer := matching.NewScorer(llmClient, logger)
	founderMatcher := matching.NewFounderMatcher(scorer, logger, cfg.Matching.MinScore, cfg.Matching.ExportDir)
	investorMatcher := matching.NewInvestorMatcher(scorer, logger, cfg.Matching.ExportDir)

	// Initialize email pipeline. The sender is optional: without SMTP
	// credentials, generation still works and sends report failure.
	generator := email.NewGenerator(llmClient, logger)
	var sender *email.Sender
	if cfg.SMTP.Sender != "" && cfg.SMTP.Password != "" {
		sender, err = email.NewSender(email.SenderConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Sender:   cfg.SMTP.Sender,
			Password: cfg.SMTP.Password,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize email sender", zap.Error(err))
		}
	} else {
		logger.Warn("SMTP credentials not configured, email sending disabled")
	}

	logs := comlog.NewWriter(cfg.Logs.Dir, logger)
	emailPipeline := email.NewPipeline(generator, sender, logs, history, logger)

	// Initialize HTTP handler
	apiHandler := handler.NewHandler(
		founderMatcher,
		investorMatcher,
		emailPipeline,
		history,
		cfg.Datasets.FoundersPath,
		cfg.Datasets.InvestorsPath,
		logger,
	)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	// Tag every request with an ID so log lines can be correlated
	router.Use(func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	})

	// Add CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Register routes
	apiHandler.RegisterRoutes(router)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("Server starting", zap.String("address", serverAddr))

	// Graceful shutdown
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Get model info for logging
	modelInfo := llmClient.GetModelInfo()
	modelName := "unknown"
	if m, ok := modelInfo["model"].(string); ok {
		modelName = m
	}

	logger.Info("Founder Matching Service is running",
		zap.String("port", cfg.Server.Port),
		zap.String("model", modelName))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
