package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tcgperu/storefront-backend/api/routes"
	"github.com/tcgperu/storefront-backend/internal/cart"
	"github.com/tcgperu/storefront-backend/internal/catalog"
	"github.com/tcgperu/storefront-backend/pkg/config"
	"github.com/tcgperu/storefront-backend/pkg/logger"
	"github.com/tcgperu/storefront-backend/pkg/metrics"
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

	index, err := catalog.LoadFeed(cfg.Catalog.FeedPath)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog feed", err)
		os.Exit(1)
	}

	carts := cart.NewRegistry()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"catalog_items": index.Len(),
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, index, carts, httpMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
