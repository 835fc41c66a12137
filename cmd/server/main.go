package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mvelasco/cryptofolio/internal/adapter"
	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/crypto"
	handler "github.com/mvelasco/cryptofolio/internal/handler/http"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/server"
	"github.com/mvelasco/cryptofolio/internal/service"
	"github.com/mvelasco/cryptofolio/internal/store"
	"github.com/mvelasco/cryptofolio/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cryptofolio-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	keychain := crypto.NewKeyChainService()

	storages, err := store.NewStorages(cfg.Storage, keychain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	marketAdapter, err := adapter.NewMarketHTTPAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating market adapter")
	}

	services := service.NewServices(storages, keychain, marketAdapter, *cfg, log)

	router := handler.NewHandler(services, log).Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go workers.NewWorkers(services, cfg.Workers, log).Run(ctx)

	if err := server.NewServer(cfg.Server, router, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}

	log.Info().Msg("server stopped")
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
