package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruit-api/core/cache"
	"recruit-api/core/config"
	"recruit-api/core/constants"
	"recruit-api/core/database"
	"recruit-api/core/logger"
	"recruit-api/core/middleware"
	"recruit-api/core/queue"
	"recruit-api/modules/availability"
	availabilityService "recruit-api/modules/availability/service"
	"recruit-api/modules/scheduling"
	schedulingService "recruit-api/modules/scheduling/service"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// newEcho builds the router with global middleware, the health check and API docs.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.ContextTimeout(constants.DefaultRequestTimeout))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// Run loads configuration, wires every module and serves until SIGINT/SIGTERM.
func Run() error {
	// 1. Config and logger
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(logger.Config{Level: cfg.Logger.Level, File: cfg.Logger.File, Format: cfg.Logger.Format}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	// 2. Infrastructure
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	redisCache, err := cache.InitRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer redisCache.Close()

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	// 3. HTTP server and modules
	e := newEcho()
	mw := middleware.NewMiddleware(nil)

	availabilitySvc := availability.Init(e, db, redisCache, mw, availabilityService.Options{
		FirstHour:       cfg.Editor.FirstHour,
		LastHour:        cfg.Editor.LastHour,
		Days:            cfg.Editor.Days,
		SaveLockTTL:     cfg.Editor.SaveLockTTL,
		RequestTimeout:  constants.DefaultRequestTimeout,
		DefaultTimezone: cfg.Scheduling.DefaultTimezone,
	})
	scheduling.Init(e, db, queueClient, mw, schedulingService.Options{
		Step:            time.Duration(cfg.Scheduling.StepMinutes) * time.Minute,
		DefaultTimezone: cfg.Scheduling.DefaultTimezone,
		MaxResults:      cfg.Scheduling.MaxResults,
		RequestTimeout:  constants.DefaultRequestTimeout,
	})

	// 4. Background worker
	worker := queue.NewServer(cfg.Redis, cfg.Queue.Concurrency)
	scheduling.InitWorker(worker, availabilitySvc)
	if err := worker.Start(); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer worker.Shutdown()

	// 5. Serve until a signal arrives
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
