// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"daylight-monitor/config"
	"daylight-monitor/internal/application"
	"daylight-monitor/internal/infrastructure"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	_ = godotenv.Load()

	cnf, err := config.NewConf()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	coords, err := application.NewCoordinates(cnf.Latitude, cnf.Longitude)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid coordinates")
	}

	recipients := application.ParseRecipients(cnf.Recipients)

	var sunSrv application.SunService
	switch cnf.SunProvider {
	case "suncalc":
		sunSrv = infrastructure.NewSuncalcSunService(coords)
	default:
		sunSrv = infrastructure.NewOpenMeteoSunService(cnf.SunApiUrl, coords)
	}

	store, err := infrastructure.NewObservationStore(cnf.ObservationDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open observation store")
	}
	defer func() {
		_ = store.Close()
	}()

	transport, err := infrastructure.NewTelegramTransport(cnf.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize transport")
	}

	tracker := application.NewDaylightTracker(
		sunSrv,
		store,
		application.NewDispatcher(transport),
		recipients,
	)

	if err := tracker.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
