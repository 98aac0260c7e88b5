// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Conf struct {
	Latitude  float64 `env:"LATITUDE" envDefault:"52.2297"`
	Longitude float64 `env:"LONGITUDE" envDefault:"21.0122"`

	SunProvider string `env:"SUN_PROVIDER" envDefault:"openmeteo"`
	SunApiUrl   string `env:"SUN_API_URL" envDefault:"https://api.open-meteo.com/v1/forecast"`

	BotToken   string `env:"BOT_TOKEN,required"`
	Recipients string `env:"RECIPIENTS"`

	ObservationDB string `env:"OBSERVATION_DB" envDefault:"daylight.db"`
}

func NewConf() (*Conf, error) {
	cnf := &Conf{}
	if err := env.Parse(cnf); err != nil {
		fmt.Printf("error on parse env config: %v", err)
		return nil, err
	}

	return cnf, nil
}
