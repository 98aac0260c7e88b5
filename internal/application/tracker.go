// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DaylightTracker runs the measurement pipeline once per invocation:
// fetch → compare → compose → dispatch → save.
type DaylightTracker struct {
	sunSrv     SunService
	store      ObservationStore
	dispatcher *Dispatcher
	recipients []Recipient
}

func NewDaylightTracker(
	sun SunService,
	store ObservationStore,
	dispatcher *Dispatcher,
	recipients []Recipient,
) *DaylightTracker {
	return &DaylightTracker{
		sunSrv:     sun,
		store:      store,
		dispatcher: dispatcher,
		recipients: recipients,
	}
}

func (t *DaylightTracker) Run(ctx context.Context) error {
	window := NewWindow(time.Now(), 2)

	records, err := t.sunSrv.Fetch(ctx, window)
	if err != nil {
		return fmt.Errorf("SunService → %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("SunService → empty window: %w", ErrDataUnavailable)
	}

	today := records[len(records)-1]

	var sentence string
	yesterday, err := t.yesterdayLength(ctx, records)
	if err != nil {
		log.Warn().Err(err).Msg("difference omitted from today's report")
	} else {
		diff := ComputeDifference(today.DayLength, yesterday)
		sentence = diff.Sentence
		log.Info().
			Int64("delta_seconds", diff.DeltaSeconds).
			Str("classification", diff.Classification.String()).
			Msg("day length compared")
	}

	message := ComposeReport(today.Sunrise, today.Sunset, sentence)

	if _, err := t.dispatcher.Dispatch(ctx, t.recipients, message); err != nil {
		return fmt.Errorf("Dispatcher → %w", err)
	}

	if err := t.store.Save(ctx, Observation{DayLength: today.DayLength}); err != nil {
		log.Warn().Err(err).Msg("failed to save today's observation")
	} else {
		log.Info().Msg("today's observation saved")
	}

	return nil
}

// yesterdayLength prefers the provider-supplied two-day window and falls
// back to the stored observation when the provider yielded a single day.
func (t *DaylightTracker) yesterdayLength(ctx context.Context, records []SunRecord) (int64, error) {
	if len(records) >= 2 {
		return records[len(records)-2].DayLength, nil
	}

	obs, found, err := t.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("ObservationStore → %v: %w", err, ErrComparisonUnavailable)
	}
	if !found {
		return 0, ErrComparisonUnavailable
	}

	return obs.DayLength, nil
}
