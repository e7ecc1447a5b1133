// mediahub/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mediahub/config"
	"mediahub/database"
	"mediahub/handlers"
	"mediahub/models"
	"mediahub/utils"

	"github.com/joho/godotenv"
)

type Application struct {
	db          *database.StoreService
	storage     models.StorageService
	rateLimiter *models.RateLimiter
	logger      *slog.Logger
	uploadDir   string
}

// Methods to satisfy the handlers.App interface
func (a *Application) DB() *database.StoreService       { return a.db }
func (a *Application) Storage() models.StorageService   { return a.storage }
func (a *Application) RateLimiter() *models.RateLimiter { return a.rateLimiter }
func (a *Application) Logger() *slog.Logger             { return a.logger }
func (a *Application) UploadDir() string                { return a.uploadDir }

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	// --- External Configuration ---
	port := utils.GetEnv("MEDIAHUB_PORT", "8080")
	dbPath := utils.GetEnv("MEDIAHUB_DB_PATH", "./mediahub.db?_journal_mode=WAL&_foreign_keys=on")
	uploadDir := utils.GetEnv("MEDIAHUB_UPLOAD_DIR", "./uploads")
	adminPassword := os.Getenv("MEDIAHUB_ADMIN_PASSWORD")
	if adminPassword == "" {
		logger.Error("FATAL: MEDIAHUB_ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	rateLimitEvery, err := time.ParseDuration(utils.GetEnv("MEDIAHUB_RATE_EVERY", config.DefaultRateLimitEvery))
	if err != nil {
		logger.Warn("Invalid MEDIAHUB_RATE_EVERY duration, using default", "default", config.DefaultRateLimitEvery)
		rateLimitEvery, _ = time.ParseDuration(config.DefaultRateLimitEvery)
	}
	rateLimitBurst, err := strconv.Atoi(utils.GetEnv("MEDIAHUB_RATE_BURST", strconv.Itoa(config.DefaultRateLimitBurst)))
	if err != nil {
		logger.Warn("Invalid MEDIAHUB_RATE_BURST integer, using default", "default", config.DefaultRateLimitBurst)
		rateLimitBurst = config.DefaultRateLimitBurst
	}
	rateLimitPrune, err := time.ParseDuration(utils.GetEnv("MEDIAHUB_RATE_PRUNE", config.DefaultRateLimitPrune))
	if err != nil {
		logger.Warn("Invalid MEDIAHUB_RATE_PRUNE duration, using default", "default", config.DefaultRateLimitPrune)
		rateLimitPrune, _ = time.ParseDuration(config.DefaultRateLimitPrune)
	}
	rateLimitExpire, err := time.ParseDuration(utils.GetEnv("MEDIAHUB_RATE_EXPIRE", config.DefaultRateLimitExpire))
	if err != nil {
		logger.Warn("Invalid MEDIAHUB_RATE_EXPIRE duration, using default", "default", config.DefaultRateLimitExpire)
		rateLimitExpire, _ = time.ParseDuration(config.DefaultRateLimitExpire)
	}

	dbService, err := database.InitDB(dbPath, adminPassword, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbService.DB.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Error("FATAL: Could not create uploads directory", "error", err)
		os.Exit(1)
	}

	// --- Storage Service Init ---
	var storageService models.StorageService
	if utils.GetEnv("MEDIAHUB_S3_ENABLED", "false") == "true" {
		endpoint := utils.GetEnv("MEDIAHUB_S3_ENDPOINT", "")
		accessKey := utils.GetEnv("MEDIAHUB_S3_ACCESS_KEY", "")
		secretKey := utils.GetEnv("MEDIAHUB_S3_SECRET_KEY", "")
		bucket := utils.GetEnv("MEDIAHUB_S3_BUCKET", "")
		region := utils.GetEnv("MEDIAHUB_S3_REGION", "us-east-1")
		publicURL := utils.GetEnv("MEDIAHUB_S3_PUBLIC_URL", "")
		useSSL := utils.GetEnv("MEDIAHUB_S3_USE_SSL", "true") == "true"

		storageService, err = utils.NewS3Storage(endpoint, accessKey, secretKey, bucket, region, publicURL, useSSL)
		if err != nil {
			logger.Error("Failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		logger.Info("S3 Storage initialized", "endpoint", endpoint, "bucket", bucket)
	} else {
		storageService = &utils.LocalStorage{UploadDir: uploadDir}
		logger.Info("Local Storage initialized", "dir", uploadDir)
	}

	app := &Application{
		db:          dbService,
		storage:     storageService,
		rateLimiter: models.NewRateLimiter(rateLimitEvery, rateLimitBurst, rateLimitPrune, rateLimitExpire),
		logger:      logger,
		uploadDir:   uploadDir,
	}

	// --- Graceful Shutdown ---
	server := &http.Server{Addr: ":" + port, Handler: handlers.SetupRouter(app)}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("mediahub server started successfully",
		"version", config.AppVersion,
		"address", "http://localhost:"+port,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("Server exiting")
}
