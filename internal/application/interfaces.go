package application

import (
	"context"
	"time"
)

type SunService interface {
	Fetch(ctx context.Context, window Window) ([]SunRecord, error)
}

type ObservationStore interface {
	Load(ctx context.Context) (Observation, bool, error)
	Save(ctx context.Context, obs Observation) error
}

type Transport interface {
	Send(ctx context.Context, to Recipient, text string) error
}

// SunRecord is one day of sun data, normalized from whatever shape the
// provider returned.
type SunRecord struct {
	Date      time.Time
	Sunrise   time.Time
	Sunset    time.Time
	DayLength int64 // seconds
}

// Observation is the single reading carried between runs.
type Observation struct {
	DayLength int64
}

// Window is an inclusive date range ending on the caller's local calendar day.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(end time.Time, days int) Window {
	if days < 1 {
		days = 1
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return Window{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

func (w Window) Days() int {
	days := 0
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
