package main

import (
	"fmt"

	"github.com/MKhiriev/go-sample-api/internal/config"
	handlerHTTP "github.com/MKhiriev/go-sample-api/internal/handler/http"
	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/server"
	"github.com/MKhiriev/go-sample-api/internal/service"
	"github.com/MKhiriev/go-sample-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-sample-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := handlerHTTP.NewHandler(services, cfg.API, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
