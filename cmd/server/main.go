package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/MKhiriev/my-movies/internal/adapter"
	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/events"
	handler "github.com/MKhiriev/my-movies/internal/handler/http"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/server"
	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/internal/workers"
	"github.com/MKhiriev/my-movies/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "my-movies: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewLogger("my-movies-server")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error connecting database")
		return err
	}
	defer db.Close()

	repos := store.NewRepositories(db, log)
	bus := events.NewBus(events.DefaultBufferSize, log)

	// the TMDB key is seeded from the settings once the services exist
	tmdb, err := adapter.NewTMDBClient(cfg.Adapter, "", log)
	if err != nil {
		log.Err(err).Msg("error creating TMDB client")
		return err
	}
	barcode, err := adapter.NewBarcodeClient(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("error creating barcode client")
		return err
	}

	services, err := service.NewServices(
		repos,
		service.Clients{TMDB: tmdb, Barcode: barcode},
		bus,
		*cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	apiKey, ok, err := services.SettingsService.Get(ctx, models.SettingTMDBAPIKey)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("TMDB API key could not be read, TMDB stays unconfigured")
	case ok:
		tmdb.SetAPIKey(apiKey)
	default:
		log.Warn().Msg("TMDB API key is not configured")
	}

	background, err := workers.NewWorkers(repos, services, bus, cfg.Workers, log)
	if err != nil {
		log.Err(err).Msg("error creating workers")
		return err
	}
	background.Run(ctx)
	defer background.Stop()
	defer bus.Close()

	h := handler.NewHandler(services, background.Enrichment, bus, *cfg, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer()
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
