package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onegreenvn/lecture-post-backend/docs"
	"github.com/onegreenvn/lecture-post-backend/internal/config"
	"github.com/onegreenvn/lecture-post-backend/internal/database"
	"github.com/onegreenvn/lecture-post-backend/internal/database/repository"
	"github.com/onegreenvn/lecture-post-backend/internal/router"
	"github.com/onegreenvn/lecture-post-backend/internal/services"
	"github.com/onegreenvn/lecture-post-backend/internal/services/auth"
	"github.com/onegreenvn/lecture-post-backend/internal/services/excel"
	"github.com/onegreenvn/lecture-post-backend/internal/services/generation"
	"github.com/onegreenvn/lecture-post-backend/internal/services/llm"
	"github.com/onegreenvn/lecture-post-backend/internal/services/prompt"
	"github.com/onegreenvn/lecture-post-backend/internal/services/session"
	"github.com/onegreenvn/lecture-post-backend/internal/utils"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Lecture Post API
// @version 1.0
// @description Turns a lecture event form into an Instagram post and a Naver Blog post
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.one-green.io/support
// @contact.email support@one-green.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by the session token returned by POST /api/v1/sessions

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Enter `ApiKey ` followed by the admin API key

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Swagger base path dynamically
	docs.SwaggerInfo.BasePath = cfg.BasePath

	// Configure logging
	configureLogging(cfg.LogLevel)

	// Initialize Sentry
	sentryEnabled, err := utils.InitSentry(cfg.SentryDSN, cfg.Environment)
	if err != nil {
		logrus.Fatalf("Failed to initialize Sentry: %v", err)
	}
	if sentryEnabled {
		defer sentry.Flush(2 * time.Second)
	}

	// Load platform rules
	table, err := loadPromptTable(cfg.PromptConfigPath)
	if err != nil {
		logrus.Fatalf("Failed to load prompt configuration: %v", err)
	}

	// A missing credential is reported per request instead of stopping the server
	client, err := llm.NewClient(cfg.Generation)
	if errors.Is(err, config.ErrMissingCredential) {
		logrus.Errorf("%v; generation requests will fail until API_KEY is set", err)
		client, err = llm.NewProviderClient(cfg.Generation)
	}
	if err != nil {
		logrus.Fatalf("Failed to initialize generation client: %v", err)
	}

	generator, err := generation.NewService(cfg.Generation, client, table)
	if err != nil {
		logrus.Fatalf("Failed to initialize generation service: %v", err)
	}
	logrus.Infof("Generation backend: %s/%s", generator.Provider(), generator.Model())

	// Sessions
	sessionStore := session.NewStore(cfg.Session.TTL)
	sessionStore.Start(cfg.Session.SweepInterval)
	defer sessionStore.Stop()

	sessionTokens, err := auth.NewSessionTokenService(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		logrus.Fatalf("Failed to initialize session tokens: %v", err)
	}

	// Create SSE Hub (shared by the post service and the events stream)
	sseHub := services.NewSSEHub()
	postService := services.NewPostService(generator, sessionStore, sessionTokens, sseHub)

	// Generation history is optional
	var historyService *services.HistoryService
	if cfg.Database.Enabled() {
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			logrus.Fatalf("Failed to initialize database: %v", err)
		}
		defer database.Close(db)

		logRepo := repository.NewGenerationLogRepository(db)
		historyService = services.NewHistoryService(logRepo, excel.NewExcelService())
		postService.SetRecorder(historyService)

		if cfg.Database.HistoryRetention > 0 {
			cleanupService := services.NewHistoryCleanupService(logRepo, cfg.Database.HistoryRetention)
			cleanupService.Start()
			defer cleanupService.Stop()
		}
	} else {
		logrus.Info("Database is not configured, generation history is disabled")
	}

	// Generated-post events are optional
	if cfg.RabbitMQ.Enabled() {
		rabbitMQService, err := services.NewRabbitMQService(cfg.RabbitMQ)
		if err != nil {
			logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
		} else {
			defer rabbitMQService.Close()
			postService.SetPublisher(rabbitMQService)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(router.Dependencies{
		PostService:   postService,
		History:       historyService,
		SSEHub:        sseHub,
		Sessions:      sessionStore,
		SessionTokens: sessionTokens,
		AdminAPIKey:   cfg.AdminAPIKey,
	})

	// Configure HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", cfg.Port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func loadPromptTable(path string) (*prompt.Table, error) {
	if path == "" {
		return prompt.DefaultTable()
	}
	logrus.Infof("Loading prompt configuration from %s", path)
	return prompt.LoadTable(path)
}
