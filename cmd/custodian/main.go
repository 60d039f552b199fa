// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/custodian"
	"github.com/MKhiriev/talos-vault/internal/gpg"
	"github.com/MKhiriev/talos-vault/internal/handler/rpc"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/server"
	"github.com/MKhiriev/talos-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("custodian")
	cfg, err := config.GetCustodianConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	if err = custodian.DisableCoreDumps(); err != nil {
		log.Warn().Err(err).Msg("could not disable core dumps")
	}

	engine := gpg.NewEngine(gpg.Config{
		Binary:       cfg.Custodian.GPGBinary,
		HomeDir:      cfg.Custodian.GNUPGHome,
		SecureTmpDir: cfg.Custodian.SecureTmpDir,
		Identity:     cfg.App.Identity,
		Timeout:      cfg.Custodian.GPGTimeout,
	}, log)
	if err = engine.Prepare(); err != nil {
		log.Fatal().Err(err).Msg("error preparing gpg home")
	}

	passphrase := custodian.NewPassphrase()
	defer passphrase.Wipe()

	vault := custodian.New(engine, passphrase, log)

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	state, err := vault.Check(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error checking keyring")
	}
	log.Info().Str("state", string(state)).Str("identity", cfg.App.Identity).Msg("custodian ready")

	handler := rpc.NewHandler(vault, cfg.App.RPCKey, log).Init()

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
