package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/dayplan/weekly-planner/internal/app"
	"github.com/dayplan/weekly-planner/internal/config"
	"github.com/dayplan/weekly-planner/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	if err := app.New(cfg, zl).Run(context.Background()); err != nil {
		zl.Fatal("server failed", zap.Error(err))
	}
}
