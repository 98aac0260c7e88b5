package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComposeReport(t *testing.T) {
	sunrise := time.Date(2024, 3, 20, 6, 2, 11, 0, time.Local)
	sunset := time.Date(2024, 3, 20, 18, 13, 42, 0, time.Local)

	message := ComposeReport(sunrise, sunset, "Today is 1 minute(s) and 0 second(s) longer than yesterday.")

	assert.Equal(t,
		"Siemanko! Today sun rises at 06:02:11 and sets at 18:13:42. "+
			"Today is 1 minute(s) and 0 second(s) longer than yesterday. Smacznej kawusi!",
		message,
	)
}

func TestComposeReportWithoutDifference(t *testing.T) {
	sunrise := time.Date(2024, 3, 20, 6, 2, 11, 0, time.Local)
	sunset := time.Date(2024, 3, 20, 18, 13, 42, 0, time.Local)

	message := ComposeReport(sunrise, sunset, "")

	assert.Equal(t, "Siemanko! Today sun rises at 06:02:11 and sets at 18:13:42. Smacznej kawusi!", message)
	assert.Contains(t, message, "06:02:11")
	assert.Contains(t, message, "18:13:42")
}

func TestComposeReportCollapsesWhitespace(t *testing.T) {
	sunrise := time.Date(2024, 3, 20, 6, 2, 11, 0, time.Local)
	sunset := time.Date(2024, 3, 20, 18, 13, 42, 0, time.Local)

	message := ComposeReport(sunrise, sunset, "It's equinox.\n\tToday will be as long as yesterday.")

	assert.NotContains(t, message, "\n")
	assert.NotContains(t, message, "\t")
	assert.NotContains(t, message, "  ")
	assert.NotEmpty(t, message)
}
