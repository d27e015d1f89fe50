package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/app"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/config"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/logger"
)

func main() {
	os.Exit(run())
}

// run 返回行程結束碼，讓 defer 在 os.Exit 前執行
func run() int {
	configPath := flag.String("config", os.Getenv("CATALOG_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Options{
		Mode:    cfg.Log.Mode,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	log.Info("Starting catalog service...",
		"env", cfg.App.Env,
		"database", cfg.Database.Driver,
		"broker", cfg.Broker.Driver,
	)

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("Failed to init app", "error", err)
		return 1
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Error("Catalog service stopped with error", "error", err)
		return 1
	}
	log.Info("Catalog service stopped")
	return 0
}
