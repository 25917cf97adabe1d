package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loomline-be/internal/alert"
	"loomline-be/internal/api"
	"loomline-be/internal/cart"
	"loomline-be/internal/catalog"
	"loomline-be/internal/checkout"
	"loomline-be/internal/config"
	"loomline-be/internal/db"
	"loomline-be/internal/hero"
	"loomline-be/internal/logger"
	"loomline-be/internal/metrics"
	"loomline-be/internal/middleware"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	port := pflag.String("port", "", "override the HTTP listen port")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("failed to load configuration", zap.Error(err))
	}
	if *port != "" {
		cfg.HTTPServer.Port = *port
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	mx := &metrics.Store{}

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo, mx)

	heroRepo := hero.NewRepository(database)
	heroSvc := hero.NewService(heroRepo)

	carts := cart.NewStore(mx)
	alerts := alert.NewRegistry()

	checkouts := checkout.NewStore(func(sessionID string) func() {
		return func() {
			_ = carts.Get(sessionID).Clear()
			alerts.Get(sessionID).Show(alert.TypeSuccess, "Order Complete",
				"Your order has been successfully placed.")
			mx.OrdersPlaced.Inc()
		}
	})

	handler := api.NewHandler(catalogSvc, heroSvc, carts, checkouts, alerts, mx)
	session := middleware.NewSessionMiddleware(cfg.Session.Secret, cfg.Session.TTL)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      api.NewRouter(handler, session),
		ReadTimeout:  cfg.HTTPServer.TimeoutRead,
		WriteTimeout: cfg.HTTPServer.TimeoutWrite,
		IdleTimeout:  cfg.HTTPServer.TimeoutIdle,
	}

	go func() {
		logger.L().Info("storefront server running", zap.String("port", cfg.HTTPServer.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
}
