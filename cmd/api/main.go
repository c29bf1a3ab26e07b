package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ecomm-labs/commerce-service/internal/api/http"
	"github.com/ecomm-labs/commerce-service/internal/api/http/handlers"
	"github.com/ecomm-labs/commerce-service/internal/config"
	"github.com/ecomm-labs/commerce-service/internal/events"
	"github.com/ecomm-labs/commerce-service/internal/observability"
	"github.com/ecomm-labs/commerce-service/internal/persistence"
	"github.com/ecomm-labs/commerce-service/internal/repository"
	"github.com/ecomm-labs/commerce-service/internal/service"
	"github.com/ecomm-labs/commerce-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}
	if cfg.Postgres.SeedData {
		if err := persistence.SeedData(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to seed data", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	userService := service.NewUserService(userRepo, dispatcher)
	productService := service.NewProductService(productRepo, dispatcher)
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics)
	usersHandler := handlers.NewUsersHandler(userService)
	productsHandler := handlers.NewProductsHandler(productService)
	ordersHandler := handlers.NewOrdersHandler(orderService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   healthHandler,
		Users:    usersHandler,
		Products: productsHandler,
		Orders:   ordersHandler,
	})

	go func() {
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
