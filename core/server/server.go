package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guest-order-api/core/cache"
	"guest-order-api/core/config"
	"guest-order-api/core/database"
	"guest-order-api/core/logger"
	appMiddleware "guest-order-api/core/middleware"
	"guest-order-api/core/queue"
	"guest-order-api/core/storage"
	"guest-order-api/core/validator"
	"guest-order-api/modules/auth"
	"guest-order-api/modules/menu"
	"guest-order-api/modules/order"
	"guest-order-api/modules/tenant"
	"guest-order-api/modules/timeslot"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole API process: config, logging, storage backends and the
// module tree, then serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	uploader, err := storage.NewUploader(context.Background(), cfg.S3)
	if err != nil {
		// Image upload degrades gracefully; everything else still works.
		logger.Warn("Server:Run:StorageUnavailable", "error", err)
		uploader = nil
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	tenantSvc := tenant.NewService(&db)
	mw := appMiddleware.NewMiddleware(tenantSvc)

	api := e.Group("/api/v1", mw.TenantMiddleware())

	tenant.Init(api, tenantSvc, mw)
	slotSvc, registry := timeslot.Init(api, &db, redisCache, mw)
	menuSvc := menu.Init(api, &db, registry, uploader, mw)
	order.Init(api, &db, menuSvc, registry, tenantSvc, queueClient, mw)

	// Signup happens before any tenant exists, so auth routes sit outside
	// the tenant-resolving group.
	public := e.Group("/api/v1")
	auth.Init(public, &db, tenantSvc, slotSvc, queueClient)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:StartError", "error", err)
		}
	}()
	logger.Info("Server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	registry.Shutdown()
	return e.Shutdown(ctx)
}
