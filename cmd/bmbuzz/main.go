// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/bmbuzz/bmbuzz/internal/config"
	"github.com/bmbuzz/bmbuzz/internal/handler"
	"github.com/bmbuzz/bmbuzz/internal/i18n"
	"github.com/bmbuzz/bmbuzz/internal/logging"
	"github.com/bmbuzz/bmbuzz/internal/middleware"
	"github.com/bmbuzz/bmbuzz/internal/news"
	"github.com/bmbuzz/bmbuzz/internal/render"
	"github.com/bmbuzz/bmbuzz/internal/scheduler"
	"github.com/bmbuzz/bmbuzz/internal/service"
	"github.com/bmbuzz/bmbuzz/internal/session"
	"github.com/bmbuzz/bmbuzz/internal/storage"
	"github.com/bmbuzz/bmbuzz/internal/store"
	"github.com/bmbuzz/bmbuzz/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "BM Buzz - Bishnupriya Manipuri community news\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BMBUZZ_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BMBUZZ_ADMIN_PASSWORD   Admin gate password\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BMBUZZ_DB_PATH          SQLite database path (default: ./data/bmbuzz.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BMBUZZ_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BMBUZZ_UPLOADS_DIR      Image upload directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BMBUZZ_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BMBUZZ_DO_SEED          Seed demo stories on first start (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("bmbuzz %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Initialize i18n catalog for the reader languages
	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}
	slog.Info("i18n system initialized", "languages", i18n.SupportedLanguages)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the Event Log database
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	eventLogHandler := logging.NewEventLogHandler(textHandler, db)
	logger = slog.New(eventLogHandler)
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	// Seed demo stories when requested
	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Initialize session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Initialize image storage
	objectStore, err := storage.NewLocal(cfg.UploadsDir, cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("initializing uploads storage: %w", err)
	}
	mediaService := service.NewMediaService(objectStore)
	slog.Info("uploads storage initialized", "dir", cfg.UploadsDir)

	// Initialize template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Start the maintenance scheduler
	sched := scheduler.New(db, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Handlers
	newsService := news.NewService(db)
	frontendHandler := handler.NewFrontendHandler(newsService, renderer, sessionManager)
	authHandler := handler.NewAuthHandler(renderer, sessionManager, cfg.AdminPassword)
	adminHandler := handler.NewAdminHandler(db, renderer, sessionManager, mediaService)
	healthHandler := handler.NewHealthHandler(db, sessionManager, cfg.UploadsDir)

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))

	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.Language())

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	r.Use(middleware.CSRF(csrfConfig))
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	// Public routes
	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get(handler.RouteCategorySlug, frontendHandler.Category)
	r.Get(handler.RoutePostID, frontendHandler.Post)
	r.Get(handler.RouteAbout, frontendHandler.About)
	r.Get(handler.RouteHealth, healthHandler.Health)

	// Admin gate
	r.Get(handler.RouteAdmin, authHandler.LoginForm)
	r.With(middleware.LoginRateLimit()).Post(handler.RouteAdminLogin, authHandler.Login)
	r.Post(handler.RouteAdminLogout, authHandler.Logout)

	// Admin panel (session-gated)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sessionManager))

		r.Get(handler.RouteAdminDashboard, adminHandler.Dashboard)
		r.Get(handler.RouteAdminNew, adminHandler.NewForm)
		r.Post(handler.RouteAdminPosts, adminHandler.Create)
		r.Get(handler.RouteAdminPostID, adminHandler.EditForm)
		r.Post(handler.RouteAdminPostID, adminHandler.Update)
		r.Post(handler.RouteAdminPostDelete, adminHandler.Delete)
		r.Post(handler.RouteAdminEditorWrap, adminHandler.EditorWrap)
	})

	// Uploaded images
	uploadsDir := objectStore.Dir()
	r.Get(handler.RouteUploads+"/*", func(w http.ResponseWriter, req *http.Request) {
		name := filepath.Base(chi.URLParam(req, "*"))
		full := filepath.Join(uploadsDir, name)

		// Containment check against path traversal
		rel, err := filepath.Rel(uploadsDir, full)
		if err != nil || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
			http.NotFound(w, req)
			return
		}

		http.ServeFile(w, req, full)
	})

	// 404 Not Found handler
	r.NotFound(frontendHandler.NotFound)

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // allow for large uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
