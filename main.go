package main

import (
	"context"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/api"
	"github.com/nhle/todo-api/internal/config"
	"github.com/nhle/todo-api/internal/seed"
	"github.com/nhle/todo-api/internal/service"
	"github.com/nhle/todo-api/internal/store"
)

func main() {
	configPath := "config.yaml"
	if v := os.Getenv("TODO_API_CONFIG"); v != "" {
		configPath = v
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := log.New()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Fatalf("storage: %v", err)
	}
	defer st.Close()

	if cfg.Seed {
		if err := seed.Run(context.Background(), st, logger); err != nil {
			logger.Fatalf("seed: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(api.RequestLogger(logger))

	api.Register(e, service.NewServices(st), logger)

	logger.WithField("addr", cfg.ListenAddr).Info("starting server")
	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
