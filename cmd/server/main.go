package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-ledger/internal/config"
	"expense-ledger/internal/database"
	"expense-ledger/internal/handlers"
	custommw "expense-ledger/internal/middleware"
	"expense-ledger/internal/repositories"
	"expense-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Repositories
	expenseRepo := repositories.NewExpenseRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	authService, err := services.NewAuthService(&cfg.Auth, cfg.Security.BCryptCost, logger)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	expenseService := services.NewExpenseService(expenseRepo, metrics, logger)
	reportService := services.NewReportService(expenseRepo, metrics, logger)
	importService := services.NewImportService(expenseService, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)
	importHandler := handlers.NewImportHandler(importService, logger)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.RequestMetrics(metrics))
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/login", authHandler.Login)

	// Everything else requires the shared secret or a session token
	api := e.Group("/api", custommw.RequireAuth(authService))
	api.GET("/expenses", expenseHandler.ListExpenses)
	api.POST("/expenses", expenseHandler.CreateExpense)
	api.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	api.GET("/expenses/export", expenseHandler.ExportCSV)
	api.POST("/expenses/import", importHandler.Import)
	api.GET("/expenses/import/sample", importHandler.SampleCSV)
	api.GET("/autocomplete/:field", expenseHandler.Autocomplete)
	api.GET("/categories", expenseHandler.Categories)
	api.GET("/reports/trend", reportHandler.Trend)
	api.GET("/reports/categories", reportHandler.Categories)
	api.GET("/reports/summary", reportHandler.Summary)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server", "addr", addr, "db_driver", cfg.Database.Driver)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
