package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kitchenhub/internal/adapter"
	"github.com/MKhiriev/kitchenhub/internal/client"
	"github.com/MKhiriev/kitchenhub/internal/config"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/service"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/internal/tui"
	"github.com/MKhiriev/kitchenhub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("kitchenhub")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	remote, err := adapter.NewDriveRemoteStore(cfg.Remote, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	provider, err := adapter.NewOAuthProvider(cfg.Auth, log.GetChildLogger())
	if err != nil {
		if !errors.Is(err, adapter.ErrNotConfigured) {
			log.Fatal().Err(err).Msg("create oauth provider")
		}
		// без OAuth-идентичности приложение работает локально
		log.Warn().Msg("no oauth client identity configured, running local-only")
		provider = nil
	}

	services := service.NewClientServices(storages, remote, provider, *cfg, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if consentAware, ok := provider.(interface{ SetConsentURLHandler(func(url string)) }); ok {
		consentAware.SetConsentURLHandler(ui.ConsentURLHandler())
	}

	app, err := client.NewApp(services, storages, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
