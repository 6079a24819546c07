package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/application/usecase"
	"github.com/seastock/seastock/infrastructure/config"
	"github.com/seastock/seastock/infrastructure/http/handler"
	"github.com/seastock/seastock/infrastructure/http/middleware"
	"github.com/seastock/seastock/infrastructure/persistence/postgres"
	"github.com/seastock/seastock/infrastructure/service/jwt"
	"github.com/seastock/seastock/infrastructure/service/logger"
	"github.com/seastock/seastock/infrastructure/service/password"
	"github.com/seastock/seastock/infrastructure/service/ratelimit"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	structuredLogger := logger.NewStructuredLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "seastock",
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"env": cfg.Environment,
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	structuredLogger.Info(ctx, "Database connection established", nil)

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	requestRepo := postgres.NewRequestRepository(db)

	// Services
	tokenService, err := jwt.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	var verifier outbound.PasswordVerifier
	if cfg.AllowAnyPassword {
		structuredLogger.Warn(ctx, "AUTH_ALLOW_ANY_PASSWORD is enabled: password verification is DISABLED", nil)
		verifier = password.NewInsecureAnyPasswordVerifier()
	} else {
		verifier = password.NewBcryptPasswordService(10)
	}

	rateLimitService, err := ratelimit.NewRateLimitService(ratelimit.Config{
		Enabled:  cfg.RateLimitEnabled,
		RedisURL: cfg.RedisURL,
	}, logrus.New())
	if err != nil {
		log.Fatalf("Failed to initialize rate limit service: %v", err)
	}

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenService, verifier, structuredLogger)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, structuredLogger)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, structuredLogger)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(
		rateLimitService,
		structuredLogger,
		cfg.RateLimitLoginAttempts,
		cfg.RateLimitLoginWindow,
	)

	// Handlers and routes
	router := mux.NewRouter()
	handler.NewAuthHandler(authUseCase, authMiddleware, rateLimitMiddleware).RegisterRoutes(router)
	handler.NewCatalogHandler(catalogUseCase, authMiddleware).RegisterRoutes(router)
	handler.NewRequestHandler(requestUseCase, authMiddleware).RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"OK","message":"Boat Supply System API is running"}`)
	}).Methods(http.MethodGet)

	var h http.Handler = middleware.CorrelationIDMiddleware(router)
	if cfg.CORSEnabled {
		h = middleware.CORSMiddleware(h, cfg.CORSAllowedOrigins)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		structuredLogger.Info(ctx, "Starting server", map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "Server failed to start", err, nil)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	structuredLogger.Info(ctx, "Shutting down server...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "Server forced to shutdown", err, nil)
	}
	structuredLogger.Info(ctx, "Server exited", nil)
}
