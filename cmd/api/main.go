package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/sqlite"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Visitor records are kept at most this long.
const visitorRetention = 12 * 30 * 24 * time.Hour

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Email Delivery
	emailCfg := email.Config{
		APIKey:    cfg.ResendAPIKey,
		FromName:  cfg.FromName,
		FromEmail: cfg.FromEmail,
		Recipient: cfg.ContactEmail,
	}
	if !emailCfg.Configured() {
		logger.Log.Warn("Email service not configured - contact form will report errors until RESEND_API_KEY is set")
	}
	sender := email.NewResendSender(cfg.ResendAPIKey)

	// 4. Setup Visitor Metrics
	var metricsUC domain.MetricsUsecase
	metricsRepo, err := sqlite.NewMetricsRepository(cfg.MetricsDBPath)
	if err != nil {
		logger.Log.Warn("Metrics store unavailable, visitor tracking disabled", "error", err)
		metricsUC = usecase.NewNoopMetricsUsecase()
	} else {
		defer metricsRepo.Close()
		metricsUC = usecase.NewMetricsUsecase(metricsRepo, generateSecret())

		// Privacy cleanup: drop visitor records past retention.
		go func() {
			deleted, err := metricsRepo.DeleteOlderThan(context.Background(), time.Now().Add(-visitorRetention))
			if err != nil {
				logger.Log.Error("Visitor data cleanup failed", "error", err)
				return
			}
			if deleted > 0 {
				logger.Log.Info("Privacy cleanup removed old visitor records", "count", deleted)
			}
		}()
	}

	if cfg.AdminToken == "" {
		cfg.AdminToken = generateSecret()
		if gin.Mode() == gin.DebugMode {
			logger.Log.Info("Generated admin token (dev only)", "token", cfg.AdminToken)
		}
	}

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(emailCfg, sender, validate)
	contentUC := usecase.NewContentUsecase()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		MetricsUC: metricsUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func generateSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate secret:", err)
	}
	return hex.EncodeToString(bytes)
}
