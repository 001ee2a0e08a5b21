// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/devkit-vault/internal/client"
	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("devvault", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Err(err).Msg("init app error")
		fmt.Fprintf(os.Stderr, "devvault: %v\n", err)
		stop()
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("app run error")
		fmt.Fprintf(os.Stderr, "devvault: %v\n", err)
		stop()
		os.Exit(1)
	}
}
