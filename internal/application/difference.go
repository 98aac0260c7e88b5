// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import "fmt"

type Classification int

const (
	Longer Classification = iota
	Shorter
	Equinox
)

func (c Classification) String() string {
	switch c {
	case Longer:
		return "longer"
	case Shorter:
		return "shorter"
	default:
		return "equinox"
	}
}

// DifferenceReport is the signed day-length delta between two days and its
// human-readable rendering.
type DifferenceReport struct {
	DeltaSeconds   int64
	Minutes        int64
	Seconds        int64
	Classification Classification
	Sentence       string
}

// ComputeDifference compares today's day length against yesterday's, both in
// seconds. The decomposition rule is sign-preserving truncation, applied
// uniformly: minutes = delta/60 truncated toward zero and
// seconds = delta - minutes*60, so minutes*60 + seconds == delta for every
// sign. The sentence renders absolute magnitudes, the direction word carries
// the sign.
func ComputeDifference(today int64, yesterday int64) DifferenceReport {
	delta := today - yesterday
	minutes := delta / 60
	seconds := delta - minutes*60

	report := DifferenceReport{
		DeltaSeconds: delta,
		Minutes:      minutes,
		Seconds:      seconds,
	}

	switch {
	case delta > 0:
		report.Classification = Longer
		report.Sentence = fmt.Sprintf(
			"Today is %d minute(s) and %d second(s) longer than yesterday.",
			minutes, seconds,
		)
	case delta < 0:
		report.Classification = Shorter
		report.Sentence = fmt.Sprintf(
			"Today is %d minute(s) and %d second(s) shorter than yesterday.",
			-minutes, -seconds,
		)
	default:
		report.Classification = Equinox
		report.Sentence = "It's equinox. Today will be as long as yesterday."
	}

	return report
}
