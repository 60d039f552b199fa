// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/MKhiriev/talos-vault/internal/client"
	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/server"
)

func main() {
	cfg, err := config.GetCLIConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
		os.Exit(1)
	}

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	var app client.Client = client.NewApp(cfg, logger.Nop())
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
		stop()
		os.Exit(1)
	}
}
