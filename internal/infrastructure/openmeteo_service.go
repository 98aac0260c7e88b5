// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"daylight-monitor/internal/application"
)

type openMeteoSunService struct {
	http     http.Client
	endpoint string
	coords   application.Coordinates
}

// NewOpenMeteoSunService builds the daily-forecast provider. A single GET
// covers the whole requested window, so the happy path needs no stored
// observation at all.
func NewOpenMeteoSunService(endpoint string, coords application.Coordinates) application.SunService {
	return &openMeteoSunService{
		http:     http.Client{Timeout: 10 * time.Second},
		endpoint: endpoint,
		coords:   coords,
	}
}

type openMeteoResponse struct {
	Timezone string `json:"timezone"`
	Daily    struct {
		Time             []string  `json:"time"`
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
		DaylightDuration []float64 `json:"daylight_duration"`
	} `json:"daily"`
}

func (s *openMeteoSunService) Fetch(ctx context.Context, window application.Window) ([]application.SunRecord, error) {
	days := window.Days()

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.6f", s.coords.Latitude))
	query.Set("longitude", fmt.Sprintf("%.6f", s.coords.Longitude))
	query.Set("daily", "sunrise,sunset,daylight_duration")
	query.Set("timezone", "auto")
	query.Set("forecast_days", "1")
	query.Set("past_days", strconv.Itoa(days-1))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("open-meteo request: %v: %w", err, application.ErrDataUnavailable)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open-meteo request failed: %v: %w", err, application.ErrDataUnavailable)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status %s: %w", resp.Status, application.ErrDataUnavailable)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("open-meteo decode: %v: %w", err, application.ErrDataUnavailable)
	}

	return s.normalize(payload, days)
}

func (s *openMeteoSunService) normalize(payload openMeteoResponse, days int) ([]application.SunRecord, error) {
	daily := payload.Daily
	if len(daily.Time) < days || len(daily.Sunrise) < days || len(daily.Sunset) < days || len(daily.DaylightDuration) < days {
		return nil, fmt.Errorf(
			"open-meteo returned %d of %d requested days: %w",
			len(daily.Time), days, application.ErrDataUnavailable,
		)
	}

	loc := time.Local
	if payload.Timezone != "" {
		if parsed, err := time.LoadLocation(payload.Timezone); err == nil {
			loc = parsed
		}
	}

	records := make([]application.SunRecord, 0, days)
	for i := 0; i < days; i++ {
		date, err := time.ParseInLocation("2006-01-02", daily.Time[i], loc)
		if err != nil {
			return nil, fmt.Errorf("open-meteo date %q: %v: %w", daily.Time[i], err, application.ErrDataUnavailable)
		}
		sunrise, err := time.ParseInLocation("2006-01-02T15:04", daily.Sunrise[i], loc)
		if err != nil {
			return nil, fmt.Errorf("open-meteo sunrise %q: %v: %w", daily.Sunrise[i], err, application.ErrDataUnavailable)
		}
		sunset, err := time.ParseInLocation("2006-01-02T15:04", daily.Sunset[i], loc)
		if err != nil {
			return nil, fmt.Errorf("open-meteo sunset %q: %v: %w", daily.Sunset[i], err, application.ErrDataUnavailable)
		}

		records = append(records, application.SunRecord{
			Date:      date,
			Sunrise:   sunrise,
			Sunset:    sunset,
			DayLength: int64(math.Round(daily.DaylightDuration[i])),
		})
	}

	return records, nil
}
