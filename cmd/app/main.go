package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"laundromart/cmd"
	httpadapter "laundromart/internal/adapters/in/http"
	"laundromart/internal/adapters/out/postgres/orderrepo"
	"laundromart/internal/adapters/out/postgres/shoprepo"
	"laundromart/internal/adapters/out/s3"
	"laundromart/internal/adapters/out/ws"
	"laundromart/internal/jobs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("application failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load(".env")

	var cfg cmd.Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &shoprepo.ShopDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	images, err := s3.NewImageStore(ctx, s3.Config{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Bucket:          cfg.S3Bucket,
	}, logger)
	if err != nil {
		return fmt.Errorf("create image store: %w", err)
	}

	hub := ws.NewHub(logger)

	root, err := cmd.NewCompositionRoot(cfg, gormDB, hub, images, logger)
	if err != nil {
		return fmt.Errorf("build composition root: %w", err)
	}

	jobManager := jobs.NewJobManager(root.CreatePurgeTerminalOrdersCommandHandler(), cfg.RetentionWindow, logger)
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateEditOrderCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateAcceptOrderCommandHandler(),
		root.CreateSelectShopCommandHandler(),
		root.CreateAdvanceOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateGetAvailableOrdersQueryHandler(),
		root.CreateGetRiderOrdersQueryHandler(),
		root.CreateGetShopOrdersQueryHandler(),
		root.CreateGetShopCapacityQueryHandler(),
		root.Hub(),
		cfg.JWTSecret,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	server.RegisterRoutes(e)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start("0.0.0.0:" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("server started", zap.String("port", cfg.HTTPPort))

	select {
	case err = <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
