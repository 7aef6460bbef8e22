//	@title			QR Keep API
//	@version		1.0
//	@description	QR code generation and storage service with swappable object-storage backends.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/qrkeep/service/internal/config"
	"github.com/qrkeep/service/internal/logging"
	appMiddleware "github.com/qrkeep/service/internal/middleware"
	"github.com/qrkeep/service/internal/qrcode"
	"github.com/qrkeep/service/internal/storage"

	_ "github.com/qrkeep/service/docs/swagger"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.IsProduction())

	store := storage.New(cfg, logger)

	// Storage bootstraps in the background so startup never blocks on
	// connectivity. Requests arriving before it completes get an explicit
	// unavailable error rather than queueing.
	go store.Initialize(context.Background())

	// Wire dependencies: manager → service → handler
	meta := qrcode.NewManager(store, logger)
	svc := qrcode.NewService(store, meta, logger)
	handler := qrcode.NewHandler(svc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-QR-Data", "X-QR-Size"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API
	r.Route("/api/qrcodes", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Put("/{codeID}", handler.Put)
		r.Get("/{codeID}", handler.Get)
		r.Head("/{codeID}", handler.Head)
		r.Get("/{codeID}/metadata", handler.GetMetadata)
		r.Delete("/{codeID}", handler.Delete)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Str("storage", cfg.StorageType).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-quit
	logger.Info().Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}

	logger.Info().Msg("server stopped")
}
