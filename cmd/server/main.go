package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/config"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/handlers"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/mail"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/media"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Select the record store. MongoDB when configured and
	// reachable, otherwise flat JSON files.
	db, dbMode := openStore(cfg)
	defer db.Close(context.Background())

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteStrictMode
	sessionStore.Options.Path = "/"
	sessionStore.Options.MaxAge = int((24 * time.Hour).Seconds())
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Outbound collaborators: media host and mail transport.
	uploader := newUploader(cfg)
	mailer := newMailer(cfg)

	// 5. Handlers
	catalogHandler := &handlers.CatalogHandler{Store: db}
	orderHandler := &handlers.OrderHandler{
		Store:    db,
		Mailer:   mailer,
		NotifyTo: cfg.NotifyEmail,
	}
	adminHandler := &handlers.AdminHandler{
		Store:    db,
		Sessions: sessionStore,
		Uploader: uploader,
		Config: handlers.AdminConfig{
			Email:      cfg.AdminEmail,
			Password:   cfg.AdminPassword,
			SetupToken: cfg.SetupToken,
			DBMode:     dbMode,
		},
	}

	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /api/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.GetProduct)
	mux.HandleFunc("POST /api/orders", orderHandler.SubmitOrder)
	mux.HandleFunc("GET /api/health", adminHandler.Health)

	// Auth
	mux.HandleFunc("POST /api/admin/login", adminHandler.Login)
	mux.HandleFunc("POST /api/admin/logout", adminHandler.Logout)
	mux.HandleFunc("POST /api/admin/setup", adminHandler.Setup)

	// Protected Routes
	mux.HandleFunc("GET /api/admin/products", adminHandler.RequireAdmin(adminHandler.ListProducts))
	mux.HandleFunc("POST /api/admin/products", adminHandler.RequireAdmin(adminHandler.CreateProduct))
	mux.HandleFunc("PUT /api/admin/products/{id}", adminHandler.RequireAdmin(adminHandler.UpdateProduct))
	mux.HandleFunc("DELETE /api/admin/products/{id}", adminHandler.RequireAdmin(adminHandler.DeleteProduct))
	mux.HandleFunc("GET /api/admin/orders", adminHandler.RequireAdmin(adminHandler.ListOrders))

	// Static Files + SPA fallback
	mux.Handle("/uploads/", http.StripPrefix("/uploads", http.FileServer(http.Dir(cfg.UploadDir))))
	mux.Handle("/", handlers.SPAHandler(cfg.PublicDir))

	// Rate Limiter (100 requests / 15 minutes per IP, API only)
	rateLimiter := handlers.NewRateLimiter(100, 15*time.Minute)

	// Chain: Logger -> Security Headers -> No-Cache -> Rate Limit -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			handlers.NoCacheMiddleware(
				rateLimiter.Middleware(mux),
			),
		),
	)

	// 6. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("CarryLuxe server starting", "port", cfg.Port, "db", dbMode)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}

// openStore prefers MongoDB and falls back to the file store when the
// connection fails, matching how deployments without a database keep
// working.
func openStore(cfg *config.Config) (store.Store, string) {
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err == nil {
			slog.Info("Connected to MongoDB", "database", cfg.MongoDB)
			return db, "mongo"
		}
		slog.Warn("MongoDB connection failed, falling back to JSON files", "error", err)
	}

	db, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to initialize file store", "error", err)
		os.Exit(1)
	}
	return db, "file"
}

func newUploader(cfg *config.Config) media.Uploader {
	if cfg.CloudinaryURL != "" {
		uploader, err := media.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err == nil {
			slog.Info("Cloudinary configured")
			return uploader
		}
		slog.Warn("Cloudinary configuration failed, storing uploads locally", "error", err)
	}

	uploader, err := media.NewLocalUploader(cfg.UploadDir)
	if err != nil {
		slog.Error("Failed to initialize upload directory", "error", err)
		os.Exit(1)
	}
	return uploader
}

func newMailer(cfg *config.Config) mail.Mailer {
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		mailer, err := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
		if err == nil {
			slog.Info("Using configured SMTP transport", "host", cfg.SMTPHost)
			return mailer
		}
		slog.Warn("SMTP configuration failed, order emails will be skipped", "error", err)
	}
	return mail.LogMailer{}
}
