package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"finanzas/internal/config"
	"finanzas/internal/database"
	"finanzas/internal/handlers"
	"finanzas/internal/logger"
	"finanzas/internal/middleware"
	"finanzas/internal/router"
	"finanzas/internal/scheduler"
	"finanzas/internal/services"
	"finanzas/internal/validator"
)

// @title           Finanzas API
// @version         1.0
// @description     Finanzas tracks household expenses, income and accounting periods and projects the balance forward month by month.

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig := config.Load()
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig())
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	overrideService := services.NewOverrideService(db)
	periodService := services.NewPeriodService(db, time.Now)
	settingsService := services.NewSettingsService(db)
	projectionService := services.NewProjectionService(
		services.NewLedgerService(db), overrideService, periodService, settingsService, time.Now,
	)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Initialize handlers
	h := router.Handlers{
		Projection:   handlers.NewProjectionHandler(projectionService, overrideService, auditService, appConfig.ProjectionDefaultMonths),
		Category:     handlers.NewCategoryHandler(services.NewCategoryService(db), auditService),
		FixedExpense: handlers.NewFixedExpenseHandler(services.NewFixedExpenseService(db), auditService),
		Expense:      handlers.NewExpenseHandler(services.NewExpenseService(db), auditService),
		Fund:         handlers.NewFundHandler(services.NewFundService(db), auditService),
		Period:       handlers.NewPeriodHandler(periodService, auditService),
		Settings:     handlers.NewSettingsHandler(settingsService, auditService),
	}

	// Background jobs
	sched := scheduler.New(ctx, periodService)
	if err := sched.Register(appConfig.PeriodCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router.New(appConfig, h, metrics, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Finanzas backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
