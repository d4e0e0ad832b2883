// Package main initializes and starts the site server, setting up
// configuration, logging, catalog storage, delivery strategy, services
// and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/olehsv/videolanding/internal/auth"
	"github.com/olehsv/videolanding/internal/config"
	"github.com/olehsv/videolanding/internal/logger"
	"github.com/olehsv/videolanding/internal/repository"
	"github.com/olehsv/videolanding/internal/server/handler/http"
	"github.com/olehsv/videolanding/internal/service"
	"github.com/olehsv/videolanding/internal/telegram"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Catalog storage: PostgreSQL when a DSN is configured, the local
	// JSON file otherwise.
	var catalogRepo service.CatalogRepository
	if options.DatabaseDSN != "" {
		db, err := repository.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		catalogRepo = repository.NewPostgresCatalogRepository(db)
		zapLogger.Info("catalog storage: postgres")
	} else {
		catalogRepo = repository.NewFileCatalogRepository(options.CatalogFile, zapLogger)
		zapLogger.Info("catalog storage: file", zap.String("path", options.CatalogFile))
	}

	// Delivery strategy, resolved once at startup.
	var deliverer telegram.Deliverer
	switch options.DeliveryMode {
	case config.DeliveryServer:
		client := telegram.NewClient(options.BotToken, options.ChatID, zapLogger)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := client.Verify(ctx); err != nil {
			zapLogger.Warn("telegram bot verification failed, inquiries may not deliver", zap.Error(err))
		}
		cancel()
		deliverer = client
	case config.DeliveryHandoff:
		deliverer = telegram.NewHandoff(options.OperatorHandle)
	default:
		zapLogger.Fatal("unknown delivery mode", zap.String("mode", options.DeliveryMode))
	}

	// Initialize business-logic services.
	inquiryService := service.NewInquiryService(deliverer, zapLogger)
	catalogService := service.NewCatalogService(catalogRepo, zapLogger)

	// Admin session boundary.
	sessions := auth.NewSessions(options.AdminUser, options.AdminPassword, auth.DefaultTTL)
	if options.AdminUser == "" || options.AdminPassword == "" {
		zapLogger.Warn("admin credentials not configured, back-office login disabled")
	}

	// Create HTTP handlers for the inquiry, catalog and auth endpoints.
	inquiryHandler := &http.InquiryHandler{InquiryService: inquiryService}
	catalogHandler := &http.CatalogHandler{CatalogService: catalogService}
	authHandler := &http.AuthHandler{Sessions: sessions}

	// Build the router with middleware and routes.
	router := http.NewRouter(inquiryHandler, catalogHandler, authHandler, sessions, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("addr", options.Address),
		zap.String("delivery_mode", options.DeliveryMode),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
