package main

import (
	"context"
	"fmt"

	"blogkeeper/internal/cache"
	"blogkeeper/internal/config"
	handler "blogkeeper/internal/handler/http"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/server"
	"blogkeeper/internal/service"
	"blogkeeper/internal/store"
	"blogkeeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.TokenSignKey == "" {
		log.Fatal().Msg("APP_TOKEN_SIGN_KEY is required")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err = migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	listCache, err := cache.NewPostListCache(ctx, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to cache")
	}

	services := service.NewServices(storages, listCache, *cfg, log)
	handlers := handler.NewHandler(services, *cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
