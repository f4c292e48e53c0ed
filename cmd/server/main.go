package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/lcmendes/weather-gist/internal/adapter"
	"github.com/lcmendes/weather-gist/internal/config"
	httpHandler "github.com/lcmendes/weather-gist/internal/handler/http"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/mailer"
	"github.com/lcmendes/weather-gist/internal/server"
	"github.com/lcmendes/weather-gist/internal/service"
	"github.com/lcmendes/weather-gist/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("weather-gist-server")

	// a missing .env is fine; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	weatherClient := adapter.NewOpenWeatherClient(cfg.Weather, log)
	gistClient := adapter.NewGithubGistClient(cfg.Gist, log)

	var mail mailer.Mailer = mailer.NopMailer{}
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP, log)
	} else {
		log.Warn().Msg("no SMTP relay configured, reset PINs will not be delivered")
	}

	services := service.NewServices(storages, weatherClient, gistClient, mail, cfg, log)

	handler := httpHandler.NewHandler(services, log)

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
