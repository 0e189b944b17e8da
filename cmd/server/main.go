package main

import (
	"context"
	"fmt"

	"github.com/stefpopov/go-wine-cellar/internal/config"
	handler "github.com/stefpopov/go-wine-cellar/internal/handler/http"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/push"
	"github.com/stefpopov/go-wine-cellar/internal/server"
	"github.com/stefpopov/go-wine-cellar/internal/service"
	"github.com/stefpopov/go-wine-cellar/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wine-cellar-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	wineRepository := store.NewWineRepository(db, log)

	hub := push.NewHub(log)
	wineService := service.NewWineService(wineRepository, hub, log)
	handlers := handler.NewHandler(wineService, hub, log)

	srv, err := server.NewServer(handlers, hub, cfg.Server, log)
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
