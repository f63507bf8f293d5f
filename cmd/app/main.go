package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wichananm65/kriuke-snack/internal/config"
	"github.com/wichananm65/kriuke-snack/internal/logger"
	"github.com/wichananm65/kriuke-snack/internal/server"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Must(cfg.Logger, cfg.Server.AppEnv)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sf, err := storefront.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal("open storefront", zap.Error(err))
	}
	sf.Start(ctx)
	log.Info("storefront ready", zap.String("store", cfg.Store.Driver))

	if err := server.Serve(ctx, server.New(sf), cfg.Server.Addr, log); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
	if err := sf.Close(); err != nil {
		log.Error("close storefront", zap.Error(err))
	}
}
