// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/talos-vault/internal/adapter"
	"github.com/MKhiriev/talos-vault/internal/backup"
	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/handler/http"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/server"
	"github.com/MKhiriev/talos-vault/internal/service"
	"github.com/MKhiriev/talos-vault/internal/store"
	"github.com/MKhiriev/talos-vault/internal/versioning"
	"github.com/MKhiriev/talos-vault/internal/workers"
	"github.com/MKhiriev/talos-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("storage")
	cfg, err := config.GetStorageConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	storages, err := store.NewStorages(cfg.Storage, cfg.App.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	sink, err := versioning.Open(ctx, storages.Root(), cfg.Storage.Versioning, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening versioning backend")
	}

	custodian, err := adapter.NewHTTPCustodianAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating custodian adapter")
	}

	services := service.NewServices(storages, custodian, sink, log)

	var wg sync.WaitGroup
	if cfg.Backup.Enabled() {
		uploader, err := backup.NewS3Uploader(ctx, cfg.Backup, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating backup uploader")
		}

		jobs := workers.NewWorkers(workers.NewSnapshotWorker(services.TreeService, uploader, cfg.Backup.Interval, log))
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs.Run(ctx)
		}()
	}

	handler := http.NewHandler(services, log).Init()

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
