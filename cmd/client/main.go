package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/client"
	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/crypto"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/tui"
	"github.com/MKhiriev/go-book-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("book-keeper-client", cfg.App.LogFile)
	ctx := context.Background()

	sealer, err := crypto.NewTokenSealer(cfg.App.HashKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create token sealer")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.Workers, log)
	ui := tui.New(services, storages.BookRepository, buildInfo, log)
	app := client.NewApp(services, storages.BookRepository, ui, cfg.Args, log)

	runErr := app.Run(ctx)
	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Err(runErr).Msg("client run error")
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
