package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/client"
	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/internal/tui"
	"github.com/MKhiriev/ff-to-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("ff-to-go-client").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewFileLogger("ff-to-go-client", cfg.LogPath)

	remote, err := adapter.NewFriendFeed(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote api client")
	}

	feeds, err := service.NewFeedService(remote, cfg.Display, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating feed service")
	}
	entries := service.NewEntryService(remote, cfg.App, log)

	session := client.NewSession(cfg)
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(feeds, entries, session, cfg.Feed, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(remote, session, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("client run error")
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
