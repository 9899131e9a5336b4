package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weddingcard/api/internal/backup"
	"github.com/weddingcard/api/internal/config"
	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/handler"
	"github.com/weddingcard/api/internal/middleware"
	"github.com/weddingcard/api/internal/payment"
	"github.com/weddingcard/api/internal/repository"
	"github.com/weddingcard/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize the file-backed mirror
	backupStore, err := backup.NewStore(cfg.Backup.Dir)
	if err != nil {
		slog.Error("failed to initialize backup store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	weddingRepo := repository.NewWeddingRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	guestbookRepo := repository.NewGuestbookRepository(db)
	contributionRepo := repository.NewContributionRepository(db)

	// Initialize services
	sessionService := service.NewSessionService(service.NewMemoryCache(), sessionRepo, logger)

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:    userRepo,
		WeddingRepo: weddingRepo,
		Sessions:    sessionService,
		Backup:      backupStore,
		Logger:      logger,
	})

	weddingService := service.NewWeddingService(service.WeddingServiceConfig{
		WeddingRepo: weddingRepo,
		UserRepo:    userRepo,
		Sessions:    sessionService,
		Backup:      backupStore,
		BackupRead:  backupStore,
		Logger:      logger,
	})

	rsvpService := service.NewRSVPService(rsvpRepo, weddingRepo)
	guestbookService := service.NewGuestbookService(guestbookRepo, weddingRepo, sessionService)

	paymentService := service.NewPaymentService(service.PaymentServiceConfig{
		ContributionRepo: contributionRepo,
		WeddingRepo:      weddingRepo,
		Sessions:         sessionService,
		Provider:         payment.NewStripeProvider(cfg.Stripe.SecretKey),
		Logger:           logger,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	weddingHandler := handler.NewWeddingHandler(weddingService)
	registryHandler := handler.NewRegistryHandler(weddingService)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	guestbookHandler := handler.NewGuestbookHandler(guestbookService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	spaHandler := handler.NewSPAHandler(cfg.Frontend.BuildDir)

	if spaHandler.Enabled() {
		slog.Info("serving frontend build", slog.String("dir", cfg.Frontend.BuildDir))
	} else {
		slog.Warn("frontend build not found, static serving disabled", slog.String("dir", cfg.Frontend.BuildDir))
	}

	// Register routes
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/profile", authHandler.Profile)

	// Wedding documents
	mux.HandleFunc("POST /api/wedding", weddingHandler.Create)
	mux.HandleFunc("PUT /api/wedding", weddingHandler.Update)
	mux.HandleFunc("GET /api/wedding", weddingHandler.GetOwn)
	mux.HandleFunc("GET /api/wedding/public/{wedding_id}", weddingHandler.PublicByID)
	mux.HandleFunc("GET /api/wedding/share/{shareable_id}", weddingHandler.ByShareableID)
	mux.HandleFunc("GET /api/wedding/user/{username}", weddingHandler.ByUsername)
	mux.HandleFunc("GET /api/wedding/user/{username}/{section}", weddingHandler.SectionByUsername)
	mux.HandleFunc("PUT /api/wedding/party", weddingHandler.UpdateParty)
	mux.HandleFunc("PUT /api/wedding/faq", weddingHandler.UpdateFAQ)
	mux.HandleFunc("PUT /api/wedding/theme", weddingHandler.UpdateTheme)

	// Registry / honeymoon fund configuration
	mux.HandleFunc("PUT /api/wedding/registry", registryHandler.Update)
	mux.HandleFunc("GET /api/wedding/registry/{wedding_id}", registryHandler.ByWeddingID)
	mux.HandleFunc("GET /api/wedding/registry/share/{shareable_id}", registryHandler.ByShareableID)

	// RSVP
	mux.HandleFunc("POST /api/rsvp", rsvpHandler.Submit)
	mux.HandleFunc("GET /api/rsvp/{wedding_id}", rsvpHandler.ListByWeddingID)
	mux.HandleFunc("GET /api/rsvp/shareable/{shareable_id}", rsvpHandler.ListByShareableID)

	// Guestbook
	mux.HandleFunc("POST /api/guestbook", guestbookHandler.Post)
	mux.HandleFunc("POST /api/guestbook/private", guestbookHandler.PostPrivate)
	mux.HandleFunc("GET /api/guestbook/{wedding_id}", guestbookHandler.ListByWeddingID)
	mux.HandleFunc("GET /api/guestbook/public/messages", guestbookHandler.ListPublic)
	mux.HandleFunc("GET /api/guestbook/private/{wedding_id}", guestbookHandler.ListPrivate)
	mux.HandleFunc("GET /api/guestbook/shareable/{shareable_id}", guestbookHandler.ListByShareableID)

	// Payments
	mux.HandleFunc("POST /api/payment/create-intent", paymentHandler.CreateIntent)
	mux.HandleFunc("POST /api/payment/confirm", paymentHandler.Confirm)
	mux.HandleFunc("POST /api/payment/upi-contribution", paymentHandler.RecordUPI)
	mux.HandleFunc("GET /api/payment/contributions/{wedding_id}", paymentHandler.ListContributions)
	mux.HandleFunc("GET /api/payment/total/{wedding_id}", paymentHandler.Total)

	// Connectivity check
	mux.HandleFunc("GET /api/test", handler.Test)

	// Everything else is the SPA (or a JSON 404 for unknown /api paths)
	mux.Handle("/", spaHandler)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server stopped")
}
