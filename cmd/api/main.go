package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pedrolima/coffee-delivery-backend/api/controllers"
	"github.com/pedrolima/coffee-delivery-backend/api/routes"
	"github.com/pedrolima/coffee-delivery-backend/internal/cart"
	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
	checkoutsvc "github.com/pedrolima/coffee-delivery-backend/internal/checkout"
	citysvc "github.com/pedrolima/coffee-delivery-backend/internal/cities"
	"github.com/pedrolima/coffee-delivery-backend/internal/orders"
	"github.com/pedrolima/coffee-delivery-backend/pkg/config"
	"github.com/pedrolima/coffee-delivery-backend/pkg/db"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
	"github.com/pedrolima/coffee-delivery-backend/pkg/metrics"
	"github.com/pedrolima/coffee-delivery-backend/pkg/money"
	"github.com/pedrolima/coffee-delivery-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	dbClient, err := db.New(context.Background(), cfg.DB)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		if err := orders.Migrate(dbClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to migrate order archive", err)
			os.Exit(1)
		}
	}

	cat, err := catalog.New()
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(context.Background(), redisClient, redisClient.CartKey(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	orderRepo, err := orders.NewRepository(redisClient, redisClient.LastOrderKey(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create order repository", err)
		os.Exit(1)
	}

	orderArchive := orders.NewArchive(dbClient.DB())

	deliveryFee, err := money.Parse(cfg.Checkout.DeliveryFee)
	if err != nil {
		logg.Error(context.Background(), "invalid delivery fee", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Cart:        cartStore,
		Catalog:     cat,
		Orders:      orderRepo,
		Archive:     orderArchive,
		DeliveryFee: deliveryFee,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	cityService, err := citysvc.NewService(redisClient, redisClient.SelectedCityKey(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create city service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			Catalog:      cat,
			Cart:         cartStore,
			Checkout:     checkoutService,
			Orders:       orderRepo,
			Archive:      orderArchive,
			Cities:       cityService,
			HTTPMetrics:  httpMetrics,
			Registry:     registry,
			HealthProbes: []controllers.Pinger{redisClient, dbClient},
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
