package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/user-registry/internal/api/http"
	"github.com/spec-kit/user-registry/internal/api/http/handlers"
	"github.com/spec-kit/user-registry/internal/config"
	"github.com/spec-kit/user-registry/internal/events"
	"github.com/spec-kit/user-registry/internal/observability"
	"github.com/spec-kit/user-registry/internal/repository"
	"github.com/spec-kit/user-registry/internal/seed"
	"github.com/spec-kit/user-registry/internal/service"
	"github.com/spec-kit/user-registry/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.Metrics.Namespace)
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(dispatcher, logger, cfg.Notification)

	users := service.NewUserService(service.UserDependencies{
		UserRepo:   repository.NewInMemoryUserRepository(),
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
	})

	if cfg.Registry.SeedFile != "" {
		file, err := seed.Load(cfg.Registry.SeedFile)
		if err != nil {
			logger.Fatal("failed to load seed file", zap.String("path", cfg.Registry.SeedFile), zap.Error(err))
		}
		created, err := seed.Apply(ctx, users, file)
		if err != nil {
			logger.Fatal("failed to seed registry", zap.Error(err))
		}
		logger.Info("registry seeded", zap.Int("users", len(created)))
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	routes := httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, users),
		Users:  handlers.NewUsersHandler(users),
	}
	if metrics != nil {
		routes.Metrics = metrics.Handler()
	}
	httptransport.RegisterRoutes(app, routes)

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
