package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/credstore/internal/adapter"
	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("credstore-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui, err := tui.New(serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	ctx := context.Background()

	// The login flow and the main loop alternate until the user exits: a
	// logout from the main loop returns to the login flow with a fresh
	// token.
	for {
		user, err := ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return
			}
			log.Fatal().Err(err).Msg("login flow error")
		}

		logout, err := ui.MainLoop(ctx, user)
		if err != nil {
			log.Fatal().Err(err).Msg("client run error")
		}
		if !logout {
			return
		}

		serverAdapter.SetToken("")
	}
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
