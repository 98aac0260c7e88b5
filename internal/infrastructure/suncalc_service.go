// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"context"
	"time"

	"github.com/sixdouglas/suncalc"

	"daylight-monitor/internal/application"
)

type suncalcSunService struct {
	coords application.Coordinates
}

// NewSuncalcSunService computes sun times locally, with day length derived
// as sunset minus sunrise. It serves deployments that cannot reach the
// forecast API.
func NewSuncalcSunService(coords application.Coordinates) application.SunService {
	return &suncalcSunService{coords: coords}
}

func (s *suncalcSunService) Fetch(_ context.Context, window application.Window) ([]application.SunRecord, error) {
	var records []application.SunRecord
	for date := window.Start; !date.After(window.End); date = date.AddDate(0, 0, 1) {
		// Using local noon as the reference to correct premature date translation at 00:00
		times := suncalc.GetTimes(date.Add(12*time.Hour), s.coords.Latitude, s.coords.Longitude)
		sunrise := times[suncalc.Sunrise].Value
		sunset := times[suncalc.Sunset].Value

		records = append(records, application.SunRecord{
			Date:      date,
			Sunrise:   sunrise,
			Sunset:    sunset,
			DayLength: int64(sunset.Sub(sunrise) / time.Second),
		})
	}

	return records, nil
}
