package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "portfolio/internal/adapter/http"
	"portfolio/internal/bootstrap"
	"portfolio/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
)

func main() {
	configFile := pflag.StringP("config", "c", "", "path to config file (default ./config.yaml or $HOME/.portfolio/config.yaml)")
	pflag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		config.NewLogger(config.LoggingConfig{}, os.Stderr).Error("loading config failed", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logging, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer rt.Close()

	h := httpadapter.NewHandler(rt.Loader, rt.Service, rt.Exporter, rt.Templates, logger)
	app := httpadapter.NewApp(h, logger, httpadapter.Options{
		AdminToken:   cfg.API.AdminToken,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.PDF.Timeout + 15*time.Second,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr(), "env", cfg.App.Env)
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
